package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mehedi-hasan-dev/blood-aid-server/internal/models"
	"github.com/mehedi-hasan-dev/blood-aid-server/internal/store"
)

type UserHandler struct {
	Users store.UserStore
}

func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

// Create registers a user. Registration always starts as a donor; role
// upgrades go through the admin route.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var u models.User
	if err := c.BodyParser(&u); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	u.Role = models.RoleDonor
	if u.Status == "" {
		u.Status = models.UserStatusActive
	}
	u.CreatedAt = time.Now()

	res, err := h.Users.Create(c.Context(), u)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create user"})
	}
	return c.JSON(fiber.Map{"success": true, "data": res})
}

func (h *UserHandler) GetRole(c *fiber.Ctx) error {
	u, err := h.Users.FindByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch user"})
	}
	return c.JSON(fiber.Map{"success": true, "data": u})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Users.All(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch users"})
	}
	return c.JSON(fiber.Map{"success": true, "data": users})
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	u, err := h.Users.FindByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch profile"})
	}
	return c.JSON(fiber.Map{"success": true, "data": u})
}

// UpdateProfile applies the body fields as-is to the user's record.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	delete(fields, "_id")

	res, err := h.Users.UpdateProfile(c.Context(), c.Params("email"), bson.M(fields))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update profile"})
	}
	return c.JSON(fiber.Map{"success": true, "data": res})
}

func (h *UserHandler) SearchDonors(c *fiber.Ctx) error {
	filter := store.DonorFilter{
		BloodGroup: c.Query("blood"),
		District:   c.Query("district"),
		Upazila:    c.Query("upazila"),
	}
	donors, err := h.Users.SearchDonors(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to search donors"})
	}
	return c.JSON(fiber.Map{"success": true, "data": donors})
}

// UpdateStatus blocks or re-activates a user: PATCH /update/user/status?email&status
func (h *UserHandler) UpdateStatus(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "email is required"})
	}

	res, err := h.Users.SetStatus(c.Context(), email, models.UserStatus(c.Query("status")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update status"})
	}
	return c.JSON(fiber.Map{"success": true, "data": res})
}

// UpdateRole changes a user's role: PATCH /update/user/role?email&role
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "email is required"})
	}

	res, err := h.Users.SetRole(c.Context(), email, models.Role(c.Query("role")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update role"})
	}
	return c.JSON(fiber.Map{"success": true, "data": res})
}
