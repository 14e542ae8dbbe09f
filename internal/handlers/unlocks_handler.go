package handlers

import (
	"errors"

	"astroleap/internal/models"
	"astroleap/internal/repositories"
	"astroleap/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UnlocksHandler handles HTTP requests for unlocked cosmetics.
type UnlocksHandler struct {
	service  *services.UnlocksService
	accounts *services.AccountService
	validate *validator.Validate
}

// NewUnlocksHandler creates a new UnlocksHandler. accounts serves the
// animation selection updates.
func NewUnlocksHandler(service *services.UnlocksService, accounts *services.AccountService) *UnlocksHandler {
	return &UnlocksHandler{
		service:  service,
		accounts: accounts,
		validate: NewValidator(),
	}
}

// RegisterRoutes registers the unlock routes with the Fiber app.
func (h *UnlocksHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/get-user-unlocks/:user_id", h.HandleGetUnlocks)
	router.Post("/add-user-unlocks", h.HandleAddUnlocks)

	router.Post("/update-anim-victory-by-id", selectionHandler(h.accounts, services.ColumnAnimVictory))
	router.Post("/update-anim-lose-by-id", selectionHandler(h.accounts, services.ColumnAnimLose))

	router.Post("/add-icon-profile", h.unlockHandler(models.UnlockIconProfile, "icon_profile", "Icon added successfully"))
	router.Post("/add-banner-profile", h.unlockHandler(models.UnlockBannerProfile, "banner_profile", "Banner added successfully"))
	router.Post("/add-skin-unlock", h.unlockHandler(models.UnlockSkinsUnlock, "skin_unlock", "Skin added successfully"))
	router.Post("/add-anim-victory", h.unlockHandler(models.UnlockAnimVictory, "anim_victory", "Victory animation added successfully"))
	router.Post("/add-anim-lose", h.unlockHandler(models.UnlockAnimLose, "anim_lose", "Defeat animation added successfully"))
}

// HandleGetUnlocks returns a user's unlock lists. A user without unlocks
// answers 200 with a message.
func (h *UnlocksHandler) HandleGetUnlocks(c *fiber.Ctx) error {
	unlocks, err := h.service.GetUnlocks(c.UserContext(), c.Params("user_id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(fiber.Map{"message": "No unlocks found for the user"})
		}
		return internalError(c, "getting user unlocks", err)
	}
	return c.JSON(unlocks)
}

// AddUnlocksRequest is the body of /add-user-unlocks.
type AddUnlocksRequest struct {
	UserID        string            `json:"user_id" validate:"required"`
	IconProfile   models.StringList `json:"icon_profile"`
	BannerProfile models.StringList `json:"banner_profile"`
	SkinsUnlock   models.StringList `json:"skins_unlock"`
	AnimVictory   models.StringList `json:"anim_victory"`
	AnimLose      models.StringList `json:"anim_lose"`
}

// HandleAddUnlocks inserts a full unlocks row.
func (h *UnlocksHandler) HandleAddUnlocks(c *fiber.Ctx) error {
	var req AddUnlocksRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "user_id is required", err)
	}

	unlocks := &models.UserUnlocks{
		UserID:        req.UserID,
		IconProfile:   req.IconProfile,
		BannerProfile: req.BannerProfile,
		SkinsUnlock:   req.SkinsUnlock,
		AnimVictory:   req.AnimVictory,
		AnimLose:      req.AnimLose,
	}
	if err := h.service.AddUnlocks(c.UserContext(), unlocks); err != nil {
		return internalError(c, "adding user unlocks", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Unlocks added successfully"})
}

// UnlockRequest is the body of the add-* unlock endpoints. Only the field
// matching the endpoint is read.
type UnlockRequest struct {
	UserID        string  `json:"user_id"`
	IconProfile   *string `json:"icon_profile"`
	BannerProfile *string `json:"banner_profile"`
	SkinUnlock    *string `json:"skin_unlock"`
	AnimVictory   *string `json:"anim_victory"`
	AnimLose      *string `json:"anim_lose"`
}

func (r UnlockRequest) value(column string) *string {
	switch column {
	case models.UnlockIconProfile:
		return r.IconProfile
	case models.UnlockBannerProfile:
		return r.BannerProfile
	case models.UnlockSkinsUnlock:
		return r.SkinUnlock
	case models.UnlockAnimVictory:
		return r.AnimVictory
	case models.UnlockAnimLose:
		return r.AnimLose
	}
	return nil
}

// unlockHandler appends the value sent for column to the user's list.
// Repeating a value is a no-op that still answers 200.
func (h *UnlocksHandler) unlockHandler(column, field, success string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		message := "user_id and " + field + " are required"
		var req UnlockRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, message, err)
		}
		value := req.value(column)
		if req.UserID == "" || value == nil {
			return badRequest(c, message, nil)
		}

		if _, err := h.service.Unlock(c.UserContext(), req.UserID, column, *value); err != nil {
			return internalError(c, "adding to "+column, err)
		}
		return c.JSON(fiber.Map{"message": success})
	}
}
