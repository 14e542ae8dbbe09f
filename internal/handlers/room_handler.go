package handlers

import (
	"errors"
	"log"

	"astroleap/internal/repositories"
	"astroleap/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const msgRoomNotFound = "Room not found"

// RoomHandler handles HTTP requests for multiplayer rooms.
type RoomHandler struct {
	service  *services.RoomService
	validate *validator.Validate
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(service *services.RoomService) *RoomHandler {
	return &RoomHandler{
		service:  service,
		validate: NewValidator(),
	}
}

// RegisterRoutes registers the room routes with the Fiber app.
func (h *RoomHandler) RegisterRoutes(router fiber.Router) {
	rooms := router.Group("/rooms")
	rooms.Get("/first-available", h.HandleFirstAvailable)
	rooms.Post("/", h.HandleCreate)
	rooms.Put("/:code/add-player2", h.HandleAddPlayer2)
	rooms.Delete("/:code", h.HandleDelete)
	rooms.Get("/:code", h.HandleGet)
}

// HandleFirstAvailable returns the code of a room waiting for a guest, or
// null when there is none.
func (h *RoomHandler) HandleFirstAvailable(c *fiber.Ctx) error {
	room, err := h.service.FindFirstAvailable(c.UserContext())
	if err != nil {
		return internalError(c, "finding available room", err)
	}
	if room == nil {
		return c.JSON(fiber.Map{"room_code": nil})
	}
	return c.JSON(fiber.Map{"room_code": room.RoomCode})
}

// CreateRoomRequest is the body of POST /rooms.
type CreateRoomRequest struct {
	RoomCode  string `json:"room_code" validate:"required"`
	Player1ID string `json:"player1_id" validate:"required"`
}

// HandleCreate opens a room hosted by player1.
func (h *RoomHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateRoomRequest
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "room_code and player1_id required", err)
	}

	if _, err := h.service.CreateAsHost(c.UserContext(), req.RoomCode, req.Player1ID); err != nil {
		log.Printf("Error creating room %s: %v", req.RoomCode, err)
		if errors.Is(err, services.ErrRoomExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return internalError(c, "creating room", err)
	}
	log.Printf("Room %s created by %s", req.RoomCode, req.Player1ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Room created"})
}

// AddPlayer2Request is the body of PUT /rooms/:code/add-player2.
type AddPlayer2Request struct {
	Player2ID string `json:"player2_id" validate:"required"`
}

// HandleAddPlayer2 seats the guest.
func (h *RoomHandler) HandleAddPlayer2(c *fiber.Ctx) error {
	var req AddPlayer2Request
	if err := bind(c, h.validate, &req); err != nil {
		return badRequest(c, "player2_id required", err)
	}

	if err := h.service.JoinAsGuest(c.UserContext(), c.Params("code"), req.Player2ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c, msgRoomNotFound)
		}
		return internalError(c, "adding player2", err)
	}
	return c.JSON(fiber.Map{"message": "player2_id updated"})
}

// HandleDelete removes a room.
func (h *RoomHandler) HandleDelete(c *fiber.Ctx) error {
	code := c.Params("code")
	if err := h.service.Delete(c.UserContext(), code); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Room %s not found for deletion", code)
			return notFound(c, msgRoomNotFound)
		}
		return internalError(c, "deleting room", err)
	}
	return c.JSON(fiber.Map{"message": "Room deleted"})
}

// HandleGet returns the room and its players.
func (h *RoomHandler) HandleGet(c *fiber.Ctx) error {
	room, err := h.service.Get(c.UserContext(), c.Params("code"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return notFound(c, msgRoomNotFound)
		}
		return internalError(c, "getting room", err)
	}
	return c.JSON(room)
}
