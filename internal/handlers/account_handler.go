package handlers

import (
	"errors"
	"log"

	"astroleap/internal/models"
	"astroleap/internal/repositories"
	"astroleap/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles HTTP requests for player accounts.
type AccountHandler struct {
	service  *services.AccountService
	validate *validator.Validate
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service *services.AccountService) *AccountHandler {
	return &AccountHandler{
		service:  service,
		validate: NewValidator(),
	}
}

// RegisterRoutes registers the account routes with the Fiber app.
func (h *AccountHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/check-user-email/:email", h.HandleCheckUserEmail)
	router.Post("/update-password", h.HandleUpdatePassword)
	router.Post("/verify-password", h.HandleVerifyPassword)

	router.Get("/get-users", h.HandleGetUsers)
	router.Get("/get-user-by-email/:email", h.HandleGetUserByEmail)
	router.Get("/get-user/:id", h.HandleGetUser)
	router.Post("/add-user", h.HandleAddUser)

	router.Post("/update-icon-selected-by-id", selectionHandler(h.service, services.ColumnIconSelected))
	router.Post("/update-banner-selected-by-id", selectionHandler(h.service, services.ColumnBannerSelected))
	router.Post("/update-skin-selected-by-id", selectionHandler(h.service, services.ColumnSkinSelected))
	router.Post("/update-name-by-id", h.HandleUpdateName)

	router.Post("/update-aurum-money", h.HandleUpdateAurum)
	router.Post("/update-voren-money", h.HandleUpdateVoren)
	router.Get("/get-aurum-by-id/:id", h.HandleGetAurum)
	router.Get("/get-voren-by-id/:id", h.HandleGetVoren)
}

// HandleCheckUserEmail reports whether an email is registered.
func (h *AccountHandler) HandleCheckUserEmail(c *fiber.Ctx) error {
	exists, err := h.service.EmailExists(c.UserContext(), c.Params("email"))
	if err != nil {
		return internalError(c, "checking user email", err)
	}
	return c.JSON(fiber.Map{"exists": exists})
}

// UpdatePasswordRequest is the body of /update-password.
type UpdatePasswordRequest struct {
	Email       string `json:"email" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// HandleUpdatePassword replaces a local password.
func (h *AccountHandler) HandleUpdatePassword(c *fiber.Ctx) error {
	var req UpdatePasswordRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "Email and new password are required", err)
	}

	err := h.service.UpdatePassword(c.UserContext(), req.Email, req.NewPassword)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"message": "Password updated successfully"})
	case errors.Is(err, services.ErrPasswordLocked):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password cannot be changed because it is 'NONE'"})
	case errors.Is(err, repositories.ErrNotFound):
		return notFound(c, msgUserNotFound)
	default:
		log.Printf("[SECURITY] Internal error hidden from client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgInternalServer})
	}
}

// VerifyPasswordRequest is the body of /verify-password.
type VerifyPasswordRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleVerifyPassword checks a password against the stored one.
func (h *AccountHandler) HandleVerifyPassword(c *fiber.Ctx) error {
	var req VerifyPasswordRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "Email and password are required", err)
	}

	ok, err := h.service.VerifyPassword(c.UserContext(), req.Email, req.Password)
	if err != nil {
		log.Printf("[SECURITY] Internal error hidden from client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgInternalServer})
	}
	return c.JSON(fiber.Map{"authenticated": ok})
}

// HandleGetUsers lists every user.
func (h *AccountHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers(c.UserContext())
	if err != nil {
		return internalError(c, "getting all users", err)
	}
	return c.JSON(orEmpty(users))
}

// HandleGetUserByEmail returns a user and reconciles their offers. An unknown
// email answers 200 with a message.
func (h *AccountHandler) HandleGetUserByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	user, err := h.service.GetUserByEmail(c.UserContext(), email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Printf("User not found for email %s", email)
			return c.JSON(fiber.Map{"message": msgUserNotFound})
		}
		return internalError(c, "getting user by email", err)
	}
	return c.JSON(user)
}

// HandleGetUser returns a user by id. An unknown id answers 200 with a message.
func (h *AccountHandler) HandleGetUser(c *fiber.Ctx) error {
	user, err := h.service.GetUserByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(fiber.Map{"message": msgUserNotFound})
		}
		return internalError(c, "getting user by ID", err)
	}
	return c.JSON(user)
}

// AddUserRequest is the body of /add-user.
type AddUserRequest struct {
	ID             string  `json:"id" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required"`
	Password       *string `json:"password"`
	NumVorenMoney  int     `json:"num_voren_money" validate:"gte=0"`
	NumAurumMoney  int     `json:"num_aurum_money" validate:"gte=0"`
	IconSelected   string  `json:"icon_selected"`
	BannerSelected string  `json:"banner_selected"`
	SkinSelected   string  `json:"skin_selected"`
	AnimVictory    string  `json:"anim_victory"`
	AnimLose       string  `json:"anim_lose"`
}

// HandleAddUser creates a user with default unlocks and leaderboard row.
func (h *AccountHandler) HandleAddUser(c *fiber.Ctx) error {
	var req AddUserRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "id, name and email are required", err)
	}

	user := &models.User{
		ID:             req.ID,
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		NumVorenMoney:  req.NumVorenMoney,
		NumAurumMoney:  req.NumAurumMoney,
		IconSelected:   req.IconSelected,
		BannerSelected: req.BannerSelected,
		SkinSelected:   req.SkinSelected,
		AnimVictory:    req.AnimVictory,
		AnimLose:       req.AnimLose,
	}
	if err := h.service.CreateUser(c.UserContext(), user); err != nil {
		return internalError(c, "creating user", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User and unlocks added successfully"})
}

// SelectionRequest is the body of the cosmetic selection updates. Only the
// field named after the updated column is read.
type SelectionRequest struct {
	ID             string `json:"id"`
	IconSelected   string `json:"icon_selected"`
	BannerSelected string `json:"banner_selected"`
	SkinSelected   string `json:"skin_selected"`
	AnimVictory    string `json:"anim_victory"`
	AnimLose       string `json:"anim_lose"`
}

func (r SelectionRequest) value(column string) string {
	switch column {
	case services.ColumnIconSelected:
		return r.IconSelected
	case services.ColumnBannerSelected:
		return r.BannerSelected
	case services.ColumnSkinSelected:
		return r.SkinSelected
	case services.ColumnAnimVictory:
		return r.AnimVictory
	case services.ColumnAnimLose:
		return r.AnimLose
	}
	return ""
}

// selectionHandler updates the cosmetic selection stored in column.
func selectionHandler(service *services.AccountService, column string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		message := "ID and " + column + " are required"
		var req SelectionRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, message, err)
		}
		value := req.value(column)
		if req.ID == "" || value == "" {
			return badRequest(c, message, nil)
		}
		return updateResult(c, column, service.UpdateSelection(c.UserContext(), req.ID, column, value))
	}
}

// UpdateNameRequest is the body of /update-name-by-id.
type UpdateNameRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// HandleUpdateName renames a user.
func (h *AccountHandler) HandleUpdateName(c *fiber.Ctx) error {
	var req UpdateNameRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "ID and name are required", err)
	}
	return updateResult(c, services.ColumnName, h.service.UpdateName(c.UserContext(), req.ID, req.Name))
}

// UpdateAurumRequest is the body of /update-aurum-money.
type UpdateAurumRequest struct {
	ID            string `json:"id" validate:"required"`
	NumAurumMoney *int   `json:"num_aurum_money" validate:"required,gte=0"`
}

// HandleUpdateAurum overwrites the aurum balance.
func (h *AccountHandler) HandleUpdateAurum(c *fiber.Ctx) error {
	var req UpdateAurumRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "ID and num_aurum_money are required", err)
	}
	return updateResult(c, services.ColumnAurumMoney, h.service.UpdateAurum(c.UserContext(), req.ID, *req.NumAurumMoney))
}

// UpdateVorenRequest is the body of /update-voren-money.
type UpdateVorenRequest struct {
	ID            string `json:"id" validate:"required"`
	NumVorenMoney *int   `json:"num_voren_money" validate:"required,gte=0"`
}

// HandleUpdateVoren overwrites the voren balance.
func (h *AccountHandler) HandleUpdateVoren(c *fiber.Ctx) error {
	var req UpdateVorenRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "ID and num_voren_money are required", err)
	}
	return updateResult(c, services.ColumnVorenMoney, h.service.UpdateVoren(c.UserContext(), req.ID, *req.NumVorenMoney))
}

// HandleGetAurum returns the aurum balance.
func (h *AccountHandler) HandleGetAurum(c *fiber.Ctx) error {
	amount, err := h.service.GetAurum(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c, msgUserNotFound)
		}
		return internalError(c, "getting aurum", err)
	}
	return c.JSON(fiber.Map{services.ColumnAurumMoney: amount})
}

// HandleGetVoren returns the voren balance.
func (h *AccountHandler) HandleGetVoren(c *fiber.Ctx) error {
	amount, err := h.service.GetVoren(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c, msgUserNotFound)
		}
		return internalError(c, "getting voren", err)
	}
	return c.JSON(fiber.Map{services.ColumnVorenMoney: amount})
}

func updateResult(c *fiber.Ctx, column string, err error) error {
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c, msgUserNotFound)
		}
		return internalError(c, "updating "+column, err)
	}
	return c.JSON(fiber.Map{"message": column + " updated successfully"})
}
