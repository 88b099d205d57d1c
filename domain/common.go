package domain

import (
	"errors"
)

const (
	RoleDonor       = "donor"
	RoleBeneficiary = "beneficiary"
)

var (
	MessageFailedBodyRequest   = "failed to parse request body"
	MessageInternalServerError = "Internal server error"
	MessageTokenNotProvided    = "Unauthorized: token not provided"
	MessageTokenInvalid        = "Unauthorized: invalid token"
	MessageTokenExpired        = "Unauthorized: token expired"
	MessageUnauthorized        = "Unauthorized: User not found"
	MessageBackendConnected    = "Backend is connected!"

	ErrParseUUID     = errors.New("invalid identifier")
	ErrTokenNotFound = errors.New("token not provided")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
	ErrUnauthorized  = errors.New("unauthorized")
)
