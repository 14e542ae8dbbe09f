package handlers

import (
	"encoding/json"
	"errors"
	"time"

	"astroleap/internal/models"
	"astroleap/internal/repositories"
	"astroleap/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// ShopHandler handles HTTP requests for the catalog, the live rotation and
// per-user offers.
type ShopHandler struct {
	shop     *services.ShopService
	current  *services.CurrentShopService
	offers   *services.UserShopService
	validate *validator.Validate
}

// NewShopHandler creates a new ShopHandler.
func NewShopHandler(shop *services.ShopService, current *services.CurrentShopService, offers *services.UserShopService) *ShopHandler {
	return &ShopHandler{
		shop:     shop,
		current:  current,
		offers:   offers,
		validate: NewValidator(),
	}
}

// RegisterRoutes registers the shop routes with the Fiber app.
func (h *ShopHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/get-shop", h.HandleGetShop)
	router.Post("/add-shop-item", h.HandleAddShopItem)
	router.Get("/get-shop-item/:id", h.HandleGetShopItem)

	router.Get("/current_shop", h.HandleGetCurrentShop)
	router.Post("/current_shop", h.HandleAddCurrentShop)

	router.Get("/user_shop/:id_user", h.HandleGetUserShop)
	router.Get("/user_shop_time_to_spin", h.HandleListUserShops)
	router.Post("/user_shop_time_to_spin", h.HandleCreateUserShop)
	router.Put("/user_shop_time_to_spin", h.HandleUpdateTimeToSpin)
	router.Delete("/user_shop_time_to_spin", h.HandleDeleteUserShop)
}

// HandleGetShop lists the catalog.
func (h *ShopHandler) HandleGetShop(c *fiber.Ctx) error {
	items, err := h.shop.GetAllItems(c.UserContext())
	if err != nil {
		return internalError(c, "getting shop", err)
	}
	return c.JSON(orEmpty(items))
}

// AddShopItemRequest is the body of /add-shop-item.
type AddShopItemRequest struct {
	TypeOffer     string          `json:"type_offer" validate:"required"`
	ElementsOffer json.RawMessage `json:"elements_offer"`
}

// HandleAddShopItem lists a new catalog item.
func (h *ShopHandler) HandleAddShopItem(c *fiber.Ctx) error {
	var req AddShopItemRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "type_offer is required", err)
	}

	item, err := h.shop.AddItem(c.UserContext(), req.TypeOffer, datatypes.JSON(req.ElementsOffer))
	if err != nil {
		return internalError(c, "adding shop item", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Shop item added successfully", "id": item.ID})
}

// HandleGetShopItem returns one catalog item.
func (h *ShopHandler) HandleGetShopItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c, "Item not found")
	}
	item, err := h.shop.GetItemByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c, "Item not found")
		}
		return internalError(c, "getting shop item", err)
	}
	return c.JSON(item)
}

// HandleGetCurrentShop lists the live offer ids.
func (h *ShopHandler) HandleGetCurrentShop(c *fiber.Ctx) error {
	ids, err := h.current.GetLiveIDs(c.UserContext())
	if err != nil {
		return internalError(c, "getting current shop", err)
	}
	return c.JSON(orEmpty(ids))
}

// CurrentShopRequest is the body of POST /current_shop.
type CurrentShopRequest struct {
	IDShop int `json:"id_shop" validate:"required"`
}

// HandleAddCurrentShop puts an offer into rotation.
func (h *ShopHandler) HandleAddCurrentShop(c *fiber.Ctx) error {
	var req CurrentShopRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "Missing id_shop", err)
	}
	if err := h.current.AddLiveID(c.UserContext(), req.IDShop); err != nil {
		return internalError(c, "adding current shop", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Current shop added", "id_shop": req.IDShop})
}

// HandleGetUserShop lists the offer ids assigned to a user.
func (h *ShopHandler) HandleGetUserShop(c *fiber.Ctx) error {
	ids, err := h.offers.GetOfferIDs(c.UserContext(), c.Params("id_user"))
	if err != nil {
		return internalError(c, "getting user shop", err)
	}
	return c.JSON(orEmpty(ids))
}

// HandleListUserShops lists every assignment.
func (h *ShopHandler) HandleListUserShops(c *fiber.Ctx) error {
	rows, err := h.offers.GetAll(c.UserContext())
	if err != nil {
		return internalError(c, "listing user shops", err)
	}
	return c.JSON(orEmpty(rows))
}

// UserShopRequest is the body of the /user_shop_time_to_spin writes.
// time_to_spin is RFC 3339 and is not needed for deletes.
type UserShopRequest struct {
	IDUser     string     `json:"id_user" validate:"required"`
	IDShop     int        `json:"id_shop" validate:"required"`
	TimeToSpin *time.Time `json:"time_to_spin"`
}

func (r UserShopRequest) model() *models.UserShop {
	row := &models.UserShop{IDUser: r.IDUser, IDShop: r.IDShop}
	if r.TimeToSpin != nil {
		row.TimeToSpin = r.TimeToSpin.UTC()
	}
	return row
}

// HandleCreateUserShop assigns an offer to a user.
func (h *ShopHandler) HandleCreateUserShop(c *fiber.Ctx) error {
	var req UserShopRequest
	if err := bind(c, h.validate, &req); err != nil || req.TimeToSpin == nil {
		return badRequest(c, "Missing fields", err)
	}
	if err := h.offers.Assign(c.UserContext(), req.model()); err != nil {
		return internalError(c, "creating user shop", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Created"})
}

// HandleUpdateTimeToSpin replaces the cooldown of an assignment.
func (h *ShopHandler) HandleUpdateTimeToSpin(c *fiber.Ctx) error {
	var req UserShopRequest
	if err := bind(c, h.validate, &req); err != nil || req.TimeToSpin == nil {
		return badRequest(c, "Missing fields", err)
	}
	if err := h.offers.SetTimeToSpin(c.UserContext(), req.model()); err != nil {
		return internalError(c, "updating time_to_spin", err)
	}
	return c.JSON(fiber.Map{"message": "Updated"})
}

// HandleDeleteUserShop removes an assignment.
func (h *ShopHandler) HandleDeleteUserShop(c *fiber.Ctx) error {
	var req UserShopRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "Missing fields", err)
	}
	if err := h.offers.Unassign(c.UserContext(), req.IDUser, req.IDShop); err != nil {
		return internalError(c, "deleting user shop", err)
	}
	return c.JSON(fiber.Map{"message": "Deleted"})
}
