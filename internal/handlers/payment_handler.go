package handlers

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mehedi-hasan-dev/blood-aid-server/internal/models"
	"github.com/mehedi-hasan-dev/blood-aid-server/internal/services/stripe"
	"github.com/mehedi-hasan-dev/blood-aid-server/internal/store"
)

// CheckoutGateway is the payment capability: create a hosted checkout
// session and retrieve its outcome by id.
type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, p stripe.CheckoutParams) (*stripe.Session, error)
	RetrieveSession(ctx context.Context, id string) (*stripe.Session, error)
}

type PaymentHandler struct {
	Payments   store.PaymentStore
	Gateway    CheckoutGateway
	SiteOrigin string
}

func NewPaymentHandler(payments store.PaymentStore, gateway CheckoutGateway, siteOrigin string) *PaymentHandler {
	return &PaymentHandler{Payments: payments, Gateway: gateway, SiteOrigin: siteOrigin}
}

type createCheckoutRequest struct {
	DonationAmount float64 `json:"donationAmount"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
}

// CreateCheckout converts the donation amount to minor units and hands off
// to the gateway's hosted page.
func (h *PaymentHandler) CreateCheckout(c *fiber.Ctx) error {
	var req createCheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if req.DonationAmount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Donation amount must be positive"})
	}

	sess, err := h.Gateway.CreateCheckoutSession(c.Context(), stripe.CheckoutParams{
		AmountMinor: int64(math.Round(req.DonationAmount * 100)),
		Currency:    "usd",
		DonorName:   req.Name,
		Email:       req.Email,
		SuccessURL:  h.SiteOrigin + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   h.SiteOrigin + "/funding",
	})
	if err != nil {
		log.Printf("stripe checkout error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Payment gateway error"})
	}

	return c.JSON(fiber.Map{"success": true, "url": sess.URL})
}

// RecordSuccess records a settled checkout session exactly once. A second
// call with the same session id finds the existing row and does nothing.
func (h *PaymentHandler) RecordSuccess(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "session_id is required"})
	}

	sess, err := h.Gateway.RetrieveSession(c.Context(), sessionID)
	if err != nil {
		log.Printf("stripe retrieve error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Payment gateway error"})
	}

	exists, err := h.Payments.ExistsByTransactionID(c.Context(), sess.PaymentIntent)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to check payment"})
	}
	if exists {
		return c.JSON(fiber.Map{"success": true, "message": "Payment already recorded"})
	}

	if !sess.Paid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Payment is not completed"})
	}

	res, err := h.Payments.Create(c.Context(), models.Payment{
		Amount:        float64(sess.AmountTotal) / 100,
		Currency:      sess.Currency,
		DonorEmail:    sess.DonorEmail(),
		TransactionID: sess.PaymentIntent,
		Status:        sess.PaymentStatus,
		PaidAt:        time.Now(),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to record payment"})
	}
	return c.JSON(fiber.Map{"success": true, "data": res})
}

func (h *PaymentHandler) History(c *fiber.Ctx) error {
	payments, err := h.Payments.History(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch payments"})
	}
	return c.JSON(fiber.Map{"success": true, "data": payments})
}
