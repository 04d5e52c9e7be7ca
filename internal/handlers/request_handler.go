package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mehedi-hasan-dev/blood-aid-server/internal/middleware"
	"github.com/mehedi-hasan-dev/blood-aid-server/internal/models"
	"github.com/mehedi-hasan-dev/blood-aid-server/internal/store"
)

type RequestHandler struct {
	Requests store.RequestStore
	Users    store.UserStore
}

func NewRequestHandler(requests store.RequestStore, users store.UserStore) *RequestHandler {
	return &RequestHandler{Requests: requests, Users: users}
}

func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var r models.DonationRequest
	if err := c.BodyParser(&r); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	r.RequesterEmail = middleware.Email(c)
	if r.DonationStatus == "" {
		r.DonationStatus = models.DonationStatusPending
	}
	r.CreatedAt = time.Now()

	res, err := h.Requests.Create(c.Context(), r)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create request"})
	}
	return c.JSON(fiber.Map{"success": true, "data": res})
}

// Mine lists the caller's own requests: GET /my-request?size&page&status.
// The page parameter is 0-indexed.
func (h *RequestHandler) Mine(c *fiber.Ctx) error {
	size := c.QueryInt("size", 10)
	if size <= 0 {
		size = 10
	}
	page := c.QueryInt("page", 0)
	if page < 0 {
		page = 0
	}

	requests, total, err := h.Requests.PageByRequester(c.Context(), middleware.Email(c), store.RequestPage{
		Status: c.Query("status"),
		Skip:   int64(page) * int64(size),
		Limit:  int64(size),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch requests"})
	}
	return c.JSON(fiber.Map{"success": true, "data": requests, "total": total})
}

// All lists every requester's requests: GET /requests/all?status&page&limit.
// Unlike Mine, the page parameter here is 1-indexed.
func (h *RequestHandler) All(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	requests, total, err := h.Requests.PageAll(c.Context(), store.RequestPage{
		Status: c.Query("status"),
		Skip:   int64(page-1) * int64(limit),
		Limit:  int64(limit),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch requests"})
	}
	return c.JSON(fiber.Map{"success": true, "data": requests, "total": total})
}

func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request id"})
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if !models.ValidDonationStatus(body.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid donation status"})
	}

	res, err := h.Requests.SetStatus(c.Context(), id, models.DonationStatus(body.Status))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update status"})
	}
	return c.JSON(fiber.Map{"success": true, "data": res})
}

// Edit applies the body fields to a request. Admins may edit any request;
// everyone else only matches their own, so a foreign id updates nothing.
func (h *RequestHandler) Edit(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request id"})
	}

	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	delete(fields, "_id")

	email := middleware.Email(c)
	actor, err := h.Users.FindByEmail(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to resolve user"})
	}

	ownerEmail := email
	if actor != nil && actor.Role == models.RoleAdmin {
		ownerEmail = ""
	}

	res, err := h.Requests.Edit(c.Context(), id, bson.M(fields), ownerEmail)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update request"})
	}
	return c.JSON(fiber.Map{"success": true, "data": res})
}

// Donate claims a pending request for the caller. A request that is no
// longer pending matches zero documents; the zero count is reported as a
// normal result.
func (h *RequestHandler) Donate(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request id"})
	}

	var body struct {
		DonorName string `json:"donorName"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	res, err := h.Requests.Claim(c.Context(), id, body.DonorName, middleware.Email(c), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to claim request"})
	}
	return c.JSON(fiber.Map{"success": true, "data": res})
}

// Delete removes one of the caller's own requests; someone else's request
// matches nothing.
func (h *RequestHandler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request id"})
	}

	res, err := h.Requests.Delete(c.Context(), id, middleware.Email(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to delete request"})
	}
	return c.JSON(fiber.Map{"success": true, "data": res})
}

func (h *RequestHandler) Pending(c *fiber.Ctx) error {
	requests, err := h.Requests.Pending(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch pending requests"})
	}
	return c.JSON(fiber.Map{"success": true, "data": requests})
}

func (h *RequestHandler) Details(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request id"})
	}

	r, err := h.Requests.FindByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch request"})
	}
	if r == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Request not found"})
	}
	return c.JSON(fiber.Map{"success": true, "data": r})
}
