package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/govista/govista-web/auth"
	bk "github.com/govista/govista-web/booking"
	"github.com/govista/govista-web/config"
	"github.com/govista/govista-web/govista"
	"github.com/govista/govista-web/web"
	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"
)

func main() {
	logger := slog.Default().With("component", "main")

	err := godotenv.Load()

	if err != nil {
		logger.Error("Error loading .env file", "err", err)
	}

	cfg := config.Load()

	if cfg.StripePublishableKey == "" {
		logger.Warn("Stripe publishable key is missing. Payments will not work.")
	}

	sessions := auth.NewStore(cfg.SessionTTL, slog.Default())

	logger.Info("using Govista API", "baseURL", cfg.APIBaseURL)
	client := govista.NewClient(cfg.APIBaseURL, sessions, slog.Default())

	bookingService := bk.NewService(client, slog.Default())

	flashes := web.NewFlashes()

	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())
	r.Use(web.Sessions(sessions))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/tours")
	})

	// AUTH

	authHandler := web.NewAuthHandler(client, sessions)
	authHandler.Register(r.Group("/auth"))

	// TOURS

	tourHandler := web.NewTourHandler(bookingService)
	tourHandler.Register(r.Group("/tours"))

	// USER BOOKINGS

	userRouter := r.Group("/user/bookings")
	userRouter.Use(web.RequireUser())
	bookingHandler := web.NewBookingHandler(bookingService, flashes, cfg.StripePublishableKey)
	bookingHandler.Register(userRouter)

	// OPERATOR

	operatorRouter := r.Group("/operator")
	operatorRouter.Use(web.RequireOperator())
	operatorHandler := web.NewOperatorHandler(bookingService, flashes)
	operatorHandler.Register(operatorRouter)

	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
