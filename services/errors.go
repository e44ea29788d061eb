package services

import "errors"

// Sentinel errors controllers map onto HTTP statuses.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("invalid_or_conflict")
	ErrAlreadyReviewed = errors.New("already reviewed")
	ErrAlreadyClaimed  = errors.New("order already claimed")
	ErrCartEmpty       = errors.New("cart is empty")
	ErrCartRestaurant  = errors.New("cart has another restaurant")
	ErrInvalidPromo    = errors.New("invalid promo code")
	ErrInvalidOTP      = errors.New("invalid or expired code")
)
