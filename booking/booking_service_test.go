package booking_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	bk "github.com/govista/govista-web/booking"
	bk_mocks "github.com/govista/govista-web/booking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	api     *bk_mocks.MockAPI
	service *bk.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := bk_mocks.NewMockAPI(ctrl)
	svc := bk.NewService(api, slog.Default())

	return ctrl, testDeps{api: api, service: svc, ctx: context.Background()}
}

func acceptedUnpaid(id string) bk.Booking {
	return bk.Booking{
		ID:            id,
		Tour:          bk.TourRef{ID: "tour-1", Tour: testTour("tour-1", 80)},
		TravelDate:    time.Now().AddDate(0, 0, 14),
		Participants:  2,
		Status:        bk.StatusAccepted,
		PaymentStatus: bk.PaymentUnpaid,
	}
}

func TestCreateBooking(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		req := bk.CreateRequest{
			TourID:       "tour-1",
			TravelDate:   time.Now().AddDate(0, 0, 7),
			Participants: 2,
		}
		created := bk.Booking{ID: "b1", Status: bk.StatusPending, PaymentStatus: bk.PaymentUnpaid}

		deps.api.EXPECT().MyBookings(deps.ctx).Return([]bk.Booking{}, nil).Times(1)
		deps.api.EXPECT().CreateBooking(deps.ctx, req).Return(created, nil).Times(1)

		got, err := deps.service.CreateBooking(deps.ctx, req)

		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("unset date fails before any network call", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.api.EXPECT().MyBookings(gomock.Any()).Times(0)
		deps.api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, bk.CreateRequest{TourID: "tour-1", Participants: 1})

		require.ErrorIs(t, err, bk.ErrNoTravelDate)
	})

	t.Run("yesterday fails before any network call", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.api.EXPECT().MyBookings(gomock.Any()).Times(0)
		deps.api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Times(0)

		req := bk.CreateRequest{
			TourID:       "tour-1",
			TravelDate:   time.Now().AddDate(0, 0, -1),
			Participants: 1,
		}

		_, err := deps.service.CreateBooking(deps.ctx, req)

		require.ErrorIs(t, err, bk.ErrPastTravelDate)
	})

	t.Run("duplicate active booking blocks the create call", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		travelDate := time.Now().AddDate(0, 0, 7)
		existing := []bk.Booking{{
			ID:         "b0",
			Tour:       bk.TourRef{ID: "tour-1"},
			TravelDate: travelDate.Add(3 * time.Hour),
			Status:     bk.StatusPending,
		}}

		deps.api.EXPECT().MyBookings(deps.ctx).Return(existing, nil).Times(1)
		deps.api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Times(0)

		req := bk.CreateRequest{TourID: "tour-1", TravelDate: travelDate, Participants: 2}

		_, err := deps.service.CreateBooking(deps.ctx, req)

		require.ErrorIs(t, err, bk.ErrDuplicateBooking)
	})

	t.Run("listing failure surfaces", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.api.EXPECT().MyBookings(deps.ctx).Return(nil, assert.AnError).Times(1)
		deps.api.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Times(0)

		req := bk.CreateRequest{
			TourID:       "tour-1",
			TravelDate:   time.Now().AddDate(0, 0, 7),
			Participants: 2,
		}

		_, err := deps.service.CreateBooking(deps.ctx, req)

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestCancelBooking(t *testing.T) {

	t.Run("pending booking cancels", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		pending := bk.Booking{ID: "b1", Status: bk.StatusPending, PaymentStatus: bk.PaymentUnpaid}
		cancelled := bk.Booking{ID: "b1", Status: bk.StatusCancelled, PaymentStatus: bk.PaymentUnpaid}

		deps.api.EXPECT().Booking(deps.ctx, "b1").Return(pending, nil).Times(1)
		deps.api.EXPECT().CancelBooking(deps.ctx, "b1").Return(cancelled, nil).Times(1)

		got, err := deps.service.CancelBooking(deps.ctx, "b1")

		require.NoError(t, err)
		assert.Equal(t, bk.StatusCancelled, got.Status)
	})

	t.Run("accepted booking refuses locally", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.api.EXPECT().Booking(deps.ctx, "b1").Return(acceptedUnpaid("b1"), nil).Times(1)
		deps.api.EXPECT().CancelBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CancelBooking(deps.ctx, "b1")

		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})
}

func TestReviewBooking(t *testing.T) {

	t.Run("accept pending", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		pending := bk.Booking{ID: "b1", Status: bk.StatusPending, PaymentStatus: bk.PaymentUnpaid}
		accepted := bk.Booking{ID: "b1", Status: bk.StatusAccepted, PaymentStatus: bk.PaymentUnpaid}

		deps.api.EXPECT().Booking(deps.ctx, "b1").Return(pending, nil).Times(1)
		deps.api.EXPECT().UpdateBookingStatus(deps.ctx, "b1", bk.StatusAccepted).Return(accepted, nil).Times(1)

		got, err := deps.service.AcceptBooking(deps.ctx, "b1")

		require.NoError(t, err)
		assert.Equal(t, bk.StatusAccepted, got.Status)
	})

	t.Run("reject pending", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		pending := bk.Booking{ID: "b1", Status: bk.StatusPending, PaymentStatus: bk.PaymentUnpaid}
		rejected := bk.Booking{ID: "b1", Status: bk.StatusRejected, PaymentStatus: bk.PaymentUnpaid}

		deps.api.EXPECT().Booking(deps.ctx, "b1").Return(pending, nil).Times(1)
		deps.api.EXPECT().UpdateBookingStatus(deps.ctx, "b1", bk.StatusRejected).Return(rejected, nil).Times(1)

		got, err := deps.service.RejectBooking(deps.ctx, "b1")

		require.NoError(t, err)
		assert.Equal(t, bk.StatusRejected, got.Status)
	})

	t.Run("already accepted refuses locally", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.api.EXPECT().Booking(deps.ctx, "b1").Return(acceptedUnpaid("b1"), nil).Times(1)
		deps.api.EXPECT().UpdateBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.AcceptBooking(deps.ctx, "b1")

		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})
}

func TestPay(t *testing.T) {

	t.Run("accepted unpaid pays", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		b := acceptedUnpaid("b1")
		paid := b
		paid.PaymentStatus = bk.PaymentPaid

		deps.api.EXPECT().ConfirmBookingPayment(deps.ctx, "b1").Return(paid, nil).Times(1)

		result, err := deps.service.Pay(deps.ctx, b)

		require.NoError(t, err)
		assert.Equal(t, bk.PaymentPaid, result.Booking.PaymentStatus)
		assert.Equal(t, "Payment successful!", result.Message)
	})

	t.Run("already paid resolves without a network call", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		b := acceptedUnpaid("b1")
		b.PaymentStatus = bk.PaymentPaid

		deps.api.EXPECT().ConfirmBookingPayment(gomock.Any(), gomock.Any()).Times(0)

		result, err := deps.service.Pay(deps.ctx, b)

		require.NoError(t, err)
		assert.Equal(t, "Payment already completed.", result.Message)
		assert.Equal(t, b, result.Booking)
	})

	t.Run("pending booking fails without a network call", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		b := bk.Booking{ID: "b1", Status: bk.StatusPending, PaymentStatus: bk.PaymentUnpaid}

		deps.api.EXPECT().ConfirmBookingPayment(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Pay(deps.ctx, b)

		require.ErrorIs(t, err, bk.ErrNotAccepted)
	})

	t.Run("server kept booking unpaid", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		b := acceptedUnpaid("b1")

		deps.api.EXPECT().ConfirmBookingPayment(deps.ctx, "b1").Return(b, nil).Times(1)

		_, err := deps.service.Pay(deps.ctx, b)

		require.ErrorIs(t, err, bk.ErrPaymentFailed)
	})
}

func TestStartPayment(t *testing.T) {

	t.Run("accepted unpaid starts an intent", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		b := acceptedUnpaid("b1")
		intent := bk.PaymentIntent{ClientSecret: "cs_test", IntentID: "pi_1"}

		deps.api.EXPECT().CreatePaymentIntent(deps.ctx, "b1").Return(intent, nil).Times(1)

		got, err := deps.service.StartPayment(deps.ctx, b)

		require.NoError(t, err)
		assert.Equal(t, intent, got)
	})

	t.Run("not accepted fails locally", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		b := bk.Booking{ID: "b1", Status: bk.StatusPending, PaymentStatus: bk.PaymentUnpaid}

		deps.api.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.StartPayment(deps.ctx, b)

		require.ErrorIs(t, err, bk.ErrNotAccepted)
	})

	t.Run("already paid fails locally", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		b := bk.Booking{ID: "b1", Status: bk.StatusAccepted, PaymentStatus: bk.PaymentPaid}

		deps.api.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.StartPayment(deps.ctx, b)

		require.ErrorIs(t, err, bk.ErrAlreadyPaid)
	})
}

func TestMyBookingsResolvesTours(t *testing.T) {

	t.Run("bare references are fetched and joined", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		bookings := []bk.Booking{
			{ID: "b1", Tour: bk.TourRef{ID: "tour-1"}, Status: bk.StatusPending, PaymentStatus: bk.PaymentUnpaid},
			{ID: "b2", Tour: bk.TourRef{ID: "tour-2", Tour: testTour("tour-2", 30)}, Status: bk.StatusPending, PaymentStatus: bk.PaymentUnpaid},
		}

		deps.api.EXPECT().MyBookings(deps.ctx).Return(bookings, nil).Times(1)
		deps.api.EXPECT().Tour(gomock.Any(), "tour-1").Return(*testTour("tour-1", 55), nil).Times(1)

		got, err := deps.service.MyBookings(deps.ctx)

		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, got[0].Tour.Tour)
		assert.Equal(t, "tour-1", got[0].Tour.Tour.ID)
		require.NotNil(t, got[1].Tour.Tour)
	})

	t.Run("failed lookup leaves the reference unresolved", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		bookings := []bk.Booking{
			{ID: "b1", Tour: bk.TourRef{ID: "tour-1"}, Status: bk.StatusPending, PaymentStatus: bk.PaymentUnpaid},
		}

		deps.api.EXPECT().MyBookings(deps.ctx).Return(bookings, nil).Times(1)
		deps.api.EXPECT().Tour(gomock.Any(), "tour-1").Return(bk.Tour{}, assert.AnError).Times(1)

		got, err := deps.service.MyBookings(deps.ctx)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].Tour.Tour)
	})
}

func TestRefundBooking(t *testing.T) {

	t.Run("paid booking refunds", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		b := acceptedUnpaid("b1")
		b.PaymentStatus = bk.PaymentPaid

		deps.api.EXPECT().Booking(deps.ctx, "b1").Return(b, nil).Times(1)
		deps.api.EXPECT().RefundPayment(deps.ctx, "b1", "customer request").Return(nil).Times(1)

		require.NoError(t, deps.service.RefundBooking(deps.ctx, "b1", "customer request"))
	})

	t.Run("unpaid booking refuses locally", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.api.EXPECT().Booking(deps.ctx, "b1").Return(acceptedUnpaid("b1"), nil).Times(1)
		deps.api.EXPECT().RefundPayment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.RefundBooking(deps.ctx, "b1", "")

		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})
}
