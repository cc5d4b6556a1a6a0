package handler

import (
	"context"

	"github.com/Astemirdum/shareit-service/server/internal/model"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=service_mocks

type UserService interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type ItemService interface {
	CreateItem(ctx context.Context, ownerID int64, req model.CreateItemRequest) (model.Item, error)
	UpdateItem(ctx context.Context, itemID, callerID int64, req model.UpdateItemRequest) (model.Item, error)
	GetItem(ctx context.Context, itemID, callerID int64) (model.ItemDetails, error)
	ListItems(ctx context.Context, ownerID int64, from, size int) ([]model.ItemDetails, error)
	SearchItems(ctx context.Context, text string, from, size int) ([]model.Item, error)
	DeleteItem(ctx context.Context, itemID int64) error
	CreateComment(ctx context.Context, itemID, authorID int64, req model.CreateCommentRequest) (model.Comment, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, bookerID int64, req model.CreateBookingRequest) (model.Booking, error)
	ApproveBooking(ctx context.Context, bookingID, ownerID int64, decision model.Decision) (model.Booking, error)
	GetBooking(ctx context.Context, bookingID, callerID int64) (model.Booking, error)
	ListBookingsByBooker(ctx context.Context, bookerID int64, state model.BookingState, from, size int) ([]model.Booking, error)
	ListBookingsByOwner(ctx context.Context, ownerID int64, state model.BookingState, from, size int) ([]model.Booking, error)
}

type RequestService interface {
	CreateRequest(ctx context.Context, requesterID int64, req model.NewItemRequest) (model.ItemRequest, error)
	GetRequest(ctx context.Context, requestID, callerID int64) (model.ItemRequestDetails, error)
	ListOwnRequests(ctx context.Context, callerID int64, from, size int) ([]model.ItemRequestDetails, error)
	ListOtherRequests(ctx context.Context, callerID int64, from, size int) ([]model.ItemRequestDetails, error)
}
