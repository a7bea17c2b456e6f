package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrFoodNotFound       = errors.New("food not found")
	ErrFavoriteNotFound   = errors.New("favorite not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrUnknownExtra       = errors.New("extra does not belong to this food")
)
