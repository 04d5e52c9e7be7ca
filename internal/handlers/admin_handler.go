package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mehedi-hasan-dev/blood-aid-server/internal/store"
)

type AdminHandler struct {
	Users    store.UserStore
	Requests store.RequestStore
	Payments store.PaymentStore
}

func NewAdminHandler(users store.UserStore, requests store.RequestStore, payments store.PaymentStore) *AdminHandler {
	return &AdminHandler{Users: users, Requests: requests, Payments: payments}
}

// Stats aggregates the dashboard counters: total users, total requests and
// the sum of all recorded payment amounts.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	users, err := h.Users.Count(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to count users"})
	}
	requests, err := h.Requests.Count(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to count requests"})
	}
	totalFunds, err := h.Payments.TotalAmount(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to sum payments"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"users":      users,
			"requests":   requests,
			"totalFunds": totalFunds,
		},
	})
}
