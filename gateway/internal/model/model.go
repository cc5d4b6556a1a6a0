package model

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId"`
}

type UpdateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
}

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" validate:"required"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}

// Validate checks the booking window beyond what struct tags can express.
func (r CreateBookingRequest) Validate(now time.Time) error {
	if !r.End.After(r.Start) {
		return errors.New("booking end must be after start")
	}
	if r.Start.Before(now) {
		return errors.New("booking start must not be in the past")
	}
	return nil
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type NewItemRequest struct {
	Description string `json:"description" validate:"required,max=255"`
}

var bookingStates = map[string]struct{}{
	"ALL": {}, "CURRENT": {}, "PAST": {}, "FUTURE": {}, "WAITING": {}, "REJECTED": {},
}

// ValidateBookingState rejects filter values the core server does not know.
func ValidateBookingState(state string) error {
	if state == "" {
		return nil
	}
	if _, ok := bookingStates[strings.ToUpper(state)]; !ok {
		return errors.New("Unknown state: UNSUPPORTED_STATUS")
	}
	return nil
}
