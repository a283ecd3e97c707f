package booking

import "errors"

var ErrNoTravelDate = errors.New("please select a date before booking")

var ErrPastTravelDate = errors.New("past dates are not allowed")

var ErrDuplicateBooking = errors.New("you have already booked this tour on this date")

var ErrNotAccepted = errors.New("booking must be accepted before payment")

var ErrAlreadyPaid = errors.New("payment already completed")

var ErrPaymentFailed = errors.New("payment failed, please try again")

var ErrInvalidBookingState = errors.New("invalid booking state")
