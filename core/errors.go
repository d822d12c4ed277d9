package core

import (
	"errors"
)

// Common errors that can be returned by contract entry points
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInvalidConfig       = errors.New("invalid mint configuration")
	ErrNotInitialized      = errors.New("contract not initialized")
	ErrUnauthorized        = errors.New("unauthorized operation")
	ErrMintingDisabled     = errors.New("minting is currently disabled")
	ErrSoldOut             = errors.New("maximum number of mints reached")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrDuplicateToken      = errors.New("token_id already claimed")
	ErrTokenNotFound       = errors.New("token not found")
	ErrApprovalNotFound    = errors.New("approval not found")
	ErrExpired             = errors.New("approval is already expired")
	ErrUnknownMessage      = errors.New("unknown message variant")
)
