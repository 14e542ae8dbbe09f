package handlers

import (
	"context"
	"errors"

	"astroleap/internal/models"
	"astroleap/internal/repositories"
	"astroleap/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CompetitiveHandler handles HTTP requests for the leaderboard.
type CompetitiveHandler struct {
	service  *services.CompetitiveService
	validate *validator.Validate
}

// NewCompetitiveHandler creates a new CompetitiveHandler.
func NewCompetitiveHandler(service *services.CompetitiveService) *CompetitiveHandler {
	return &CompetitiveHandler{
		service:  service,
		validate: NewValidator(),
	}
}

// RegisterRoutes registers the leaderboard routes with the Fiber app. Static
// segments are registered before /:id_user.
func (h *CompetitiveHandler) RegisterRoutes(router fiber.Router) {
	competitive := router.Group("/user_competitive")
	competitive.Get("/", h.HandleList)
	competitive.Post("/", h.HandleCreate)
	competitive.Get("/top-trophies", h.topHandler(h.service.TopTrophies, services.TopShort))
	competitive.Get("/top-meters", h.topHandler(h.service.TopMeters, services.TopShort))
	competitive.Get("/top10-trophies", h.topHandler(h.service.TopTrophies, services.TopLong))
	competitive.Get("/top10-meters", h.topHandler(h.service.TopMeters, services.TopLong))
	competitive.Put("/set-trophies/:id_user", h.HandleSetTrophies)
	competitive.Put("/set-meters/:id_user", h.HandleSetMeters)
	competitive.Get("/:id_user", h.HandleGet)
	competitive.Put("/:id_user", h.HandleUpdate)
}

// HandleList returns every leaderboard row.
func (h *CompetitiveHandler) HandleList(c *fiber.Ctx) error {
	rows, err := h.service.List(c.UserContext())
	if err != nil {
		return internalError(c, "listing competitive rows", err)
	}
	return c.JSON(orEmpty(rows))
}

// CreateCompetitiveRequest is the body of POST /user_competitive.
type CreateCompetitiveRequest struct {
	IDUser            string  `json:"id_user" validate:"required"`
	Trophies          int     `json:"trophies"`
	MaxMetersTraveled float64 `json:"max_meters_traveled"`
}

// HandleCreate inserts a leaderboard row.
func (h *CompetitiveHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateCompetitiveRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "id_user is required", err)
	}

	row := &models.UserCompetitive{
		IDUser:            req.IDUser,
		Trophies:          req.Trophies,
		MaxMetersTraveled: req.MaxMetersTraveled,
	}
	if err := h.service.Create(c.UserContext(), row); err != nil {
		return internalError(c, "creating competitive row", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Record created"})
}

// HandleGet returns one user's row.
func (h *CompetitiveHandler) HandleGet(c *fiber.Ctx) error {
	row, err := h.service.Get(c.UserContext(), c.Params("id_user"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c, msgUserNotFound)
		}
		return internalError(c, "getting competitive row", err)
	}
	return c.JSON(row)
}

// UpdateCompetitiveRequest is the body of PUT /user_competitive/:id_user.
type UpdateCompetitiveRequest struct {
	Trophies          *int     `json:"trophies"`
	MaxMetersTraveled *float64 `json:"max_meters_traveled"`
}

// HandleUpdate overwrites the provided fields.
func (h *CompetitiveHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateCompetitiveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Nothing to update", err)
	}

	update := services.CompetitiveUpdate{Trophies: req.Trophies, MaxMetersTraveled: req.MaxMetersTraveled}
	if err := h.service.Update(c.UserContext(), c.Params("id_user"), update); err != nil {
		if errors.Is(err, services.ErrNothingToUpdate) {
			return badRequest(c, "Nothing to update", nil)
		}
		return internalError(c, "updating competitive row", err)
	}
	return c.JSON(fiber.Map{"message": "Record updated"})
}

// SetTrophiesRequest is the body of /set-trophies/:id_user.
type SetTrophiesRequest struct {
	Trophies *int `json:"trophies" validate:"required"`
}

// HandleSetTrophies overwrites the trophy count.
func (h *CompetitiveHandler) HandleSetTrophies(c *fiber.Ctx) error {
	var req SetTrophiesRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "trophies is required", err)
	}
	if err := h.service.SetTrophies(c.UserContext(), c.Params("id_user"), *req.Trophies); err != nil {
		return internalError(c, "setting trophies", err)
	}
	return c.JSON(fiber.Map{"message": "Trophies updated"})
}

// SetMetersRequest is the body of /set-meters/:id_user.
type SetMetersRequest struct {
	MaxMetersTraveled *float64 `json:"max_meters_traveled" validate:"required"`
}

// HandleSetMeters overwrites the best distance.
func (h *CompetitiveHandler) HandleSetMeters(c *fiber.Ctx) error {
	var req SetMetersRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "max_meters_traveled is required", err)
	}
	if err := h.service.SetMeters(c.UserContext(), c.Params("id_user"), *req.MaxMetersTraveled); err != nil {
		return internalError(c, "setting meters", err)
	}
	return c.JSON(fiber.Map{"message": "Meters updated"})
}

type topFunc func(ctx context.Context, limit int) ([]models.UserCompetitive, error)

func (h *CompetitiveHandler) topHandler(top topFunc, limit int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := top(c.UserContext(), limit)
		if err != nil {
			return internalError(c, "getting leaderboard", err)
		}
		return c.JSON(orEmpty(rows))
	}
}
