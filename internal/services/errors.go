package services

import "errors"

var (
	// ErrPasswordLocked is returned when a password change is requested for an
	// account without a local password.
	ErrPasswordLocked = errors.New("password cannot be changed for an account without a local password")
	// ErrNothingToUpdate is returned by partial updates with no fields set.
	ErrNothingToUpdate = errors.New("nothing to update")
	// ErrRoomExists is returned when a room code is already taken.
	ErrRoomExists = errors.New("room code already exists")
	// ErrUnknownList is returned for an unlock list name that does not exist.
	ErrUnknownList = errors.New("unknown unlock list")
)

// ErrInvalidAmount is returned for order amounts that are not positive.
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// ErrGatewayToken is returned when the gateway access token cannot be obtained.
var ErrGatewayToken = errors.New("failed to fetch PayPal token")
