package model

import "time"

type ItemRequest struct {
	ID          int64     `json:"id" db:"id"`
	Description string    `json:"description" db:"description"`
	RequesterID int64     `json:"-" db:"requester_id"`
	Created     time.Time `json:"created" db:"created"`
}

// ItemRequestDetails is an ItemRequest with the items created to fulfill it.
type ItemRequestDetails struct {
	ItemRequest
	Items []Item `json:"items"`
}

type NewItemRequest struct {
	Description string `json:"description" validate:"required,max=255"`
}
