package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit-service/server/internal/model"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock.go -package=repo_mocks

type Repository interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
	UserExists(ctx context.Context, id int64) (bool, error)

	CreateItem(ctx context.Context, item model.Item) (model.Item, error)
	GetItem(ctx context.Context, id int64) (model.Item, error)
	UpdateItem(ctx context.Context, id int64, req model.UpdateItemRequest) (model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	ListItemsByOwner(ctx context.Context, ownerID int64, from, size int) ([]model.Item, error)
	SearchItems(ctx context.Context, text string, from, size int) ([]model.Item, error)
	ListItemsByRequests(ctx context.Context, requestIDs []int64) ([]model.Item, error)

	CreateBooking(ctx context.Context, itemID, bookerID int64, start, end time.Time) (model.Booking, error)
	GetBooking(ctx context.Context, id int64) (model.Booking, error)
	SetBookingStatus(ctx context.Context, id int64, from, to model.BookingStatus) (bool, error)
	ListBookingsByBooker(ctx context.Context, bookerID int64, state model.BookingState, now time.Time, from, size int) ([]model.Booking, error)
	ListBookingsByOwner(ctx context.Context, ownerID int64, state model.BookingState, now time.Time, from, size int) ([]model.Booking, error)
	LastBookings(ctx context.Context, itemIDs []int64, now time.Time) ([]model.BookingShort, error)
	NextBookings(ctx context.Context, itemIDs []int64, now time.Time) ([]model.BookingShort, error)
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)

	CreateComment(ctx context.Context, itemID, authorID int64, text string, created time.Time) (model.Comment, error)
	ListCommentsByItems(ctx context.Context, itemIDs []int64) ([]model.Comment, error)

	CreateRequest(ctx context.Context, requesterID int64, description string, created time.Time) (model.ItemRequest, error)
	GetRequest(ctx context.Context, id int64) (model.ItemRequest, error)
	ListRequestsByRequester(ctx context.Context, requesterID int64, from, size int) ([]model.ItemRequest, error)
	ListRequestsExcept(ctx context.Context, requesterID int64, from, size int) ([]model.ItemRequest, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName    = `users`
	itemsTableName    = `items`
	bookingsTableName = `bookings`
	commentsTableName = `comments`
	requestsTableName = `requests`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
