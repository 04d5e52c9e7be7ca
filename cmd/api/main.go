package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/mehedi-hasan-dev/blood-aid-server/internal/auth"
	"github.com/mehedi-hasan-dev/blood-aid-server/internal/config"
	"github.com/mehedi-hasan-dev/blood-aid-server/internal/db"
	"github.com/mehedi-hasan-dev/blood-aid-server/internal/handlers"
	"github.com/mehedi-hasan-dev/blood-aid-server/internal/middleware"
	"github.com/mehedi-hasan-dev/blood-aid-server/internal/services/stripe"
	"github.com/mehedi-hasan-dev/blood-aid-server/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatal("mongo connect:", err)
	}
	log.Println("Connected to MongoDB")

	database := client.Database(cfg.MongoDB)
	users := store.NewUserStore(database.Collection("users"))
	requests := store.NewRequestStore(database.Collection("requests"))
	payments := store.NewPaymentStore(database.Collection("payments"))

	verifier := auth.GoogleVerifier{ClientID: cfg.GoogleClientID}
	gateway := stripe.NewService(cfg.StripeSecretKey)

	userH := handlers.NewUserHandler(users)
	requestH := handlers.NewRequestHandler(requests, users)
	paymentH := handlers.NewPaymentHandler(payments, gateway, cfg.SiteOrigin)
	adminH := handlers.NewAdminHandler(users, requests, payments)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.SiteOrigin,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Options("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	authed := middleware.RequireAuth(verifier)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Blood Donation Server is Running!")
	})

	// users
	app.Post("/users", userH.Create)
	app.Get("/users/role/:email", userH.GetRole)
	app.Get("/users/search", userH.SearchDonors)
	app.Get("/users/profile/:email", userH.GetProfile)
	app.Patch("/users/profile/:email", authed, userH.UpdateProfile)
	app.Get("/users", authed, userH.List)
	app.Patch("/update/user/status", authed, userH.UpdateStatus)
	app.Patch("/update/user/role", authed, userH.UpdateRole)

	// donation requests
	app.Post("/requests", authed, requestH.Create)
	app.Get("/my-request", authed, requestH.Mine)
	app.Get("/requests/all", authed, requestH.All)
	app.Get("/requests/pending", requestH.Pending)
	app.Patch("/requests/:id/status", authed, requestH.UpdateStatus)
	app.Patch("/requests/:id/donate", authed, requestH.Donate)
	app.Patch("/requests/:id", authed, requestH.Edit)
	app.Delete("/requests/:id", authed, requestH.Delete)
	app.Get("/requests/:id", requestH.Details)

	// stats & payments
	app.Get("/admin-stats", authed, adminH.Stats)
	app.Post("/create-payment-checkout", paymentH.CreateCheckout)
	app.Post("/success-payment", paymentH.RecordSuccess)
	app.Get("/payments/history", paymentH.History)

	go func() {
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			log.Fatal(err)
		}
	}()
	log.Println("Server running on port " + cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Println("server shutdown:", err)
	}
	if err := client.Disconnect(context.Background()); err != nil {
		log.Println("mongo disconnect:", err)
	}
}
