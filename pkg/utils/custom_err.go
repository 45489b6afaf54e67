package utils

import "errors"

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrForbidden       = errors.New("forbidden")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrSongNotFound     = errors.New("song not found")
	ErrArtistNotFound   = errors.New("artist not found")
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")

	ErrNotificationNotFound = errors.New("notification not found")

	ErrPlanNotFound          = errors.New("subscription plan not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrSubscriptionNotFound  = errors.New("subscription not found")

	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrReferenceNotFound       = errors.New("transaction reference not found")
	ErrInvalidSignature        = errors.New("invalid webhook signature")
	ErrInvalidWebhookPayload   = errors.New("invalid webhook payload")
	ErrInvalidTransactionState = errors.New("transaction is not in a valid state for this operation")

	ErrSigningFailed      = errors.New("playback url signing failed")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
