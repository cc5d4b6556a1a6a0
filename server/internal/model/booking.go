package model

import (
	"strings"
	"time"

	"github.com/Astemirdum/shareit-service/server/internal/errs"
	"github.com/pkg/errors"
)

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// Decision is the owner's verdict on a waiting booking.
type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

func DecisionFromBool(approved bool) Decision {
	if approved {
		return DecisionApproved
	}
	return DecisionRejected
}

func (d Decision) Status() BookingStatus {
	if d == DecisionApproved {
		return StatusApproved
	}
	return StatusRejected
}

// BookingState filters booking listings by time window or status.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

func ParseBookingState(s string) (BookingState, error) {
	if s == "" {
		return StateAll, nil
	}
	switch state := BookingState(strings.ToUpper(s)); state {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return state, nil
	default:
		return "", errors.Wrap(errs.ErrValidation, "Unknown state: UNSUPPORTED_STATUS")
	}
}

type ItemShort struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	OwnerID int64  `json:"-" db:"owner_id"`
}

type UserShort struct {
	ID int64 `json:"id" db:"id"`
}

type Booking struct {
	ID     int64         `json:"id" db:"id"`
	Start  time.Time     `json:"start" db:"start_date"`
	End    time.Time     `json:"end" db:"end_date"`
	Status BookingStatus `json:"status" db:"status"`
	Item   ItemShort     `json:"item" db:"item"`
	Booker UserShort     `json:"booker" db:"booker"`
}

// BookingShort is the last/next booking summary attached to an item.
type BookingShort struct {
	ID       int64 `json:"id" db:"id"`
	BookerID int64 `json:"bookerId" db:"booker_id"`
	ItemID   int64 `json:"-" db:"item_id"`
}

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" validate:"required"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}

type BookingEvent struct {
	BookingID int64         `json:"bookingId"`
	ItemID    int64         `json:"itemId"`
	BookerID  int64         `json:"bookerId"`
	Status    BookingStatus `json:"status"`
	At        time.Time     `json:"at"`
}
