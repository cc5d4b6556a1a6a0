package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit-service/server/internal/errs"
	"github.com/Astemirdum/shareit-service/server/internal/model"
)

var bookingColumns = []string{
	"b.id", "b.start_date", "b.end_date", "b.status",
	`i.id as "item.id"`, `i.name as "item.name"`, `i.owner_id as "item.owner_id"`,
	`u.id as "booker.id"`,
}

func (r *repository) bookingQuery() sq.SelectBuilder {
	return qb.Select(bookingColumns...).
		From(bookingsTableName + " b").
		Join(itemsTableName + " i on i.id = b.item_id").
		Join(usersTableName + " u on u.id = b.booker_id")
}

// CreateBooking re-checks item availability under a row lock so that a
// concurrent owner update cannot slip in between the check and the insert.
func (r *repository) CreateBooking(ctx context.Context, itemID, bookerID int64, start, end time.Time) (model.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Booking{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var available bool
	if err := tx.GetContext(ctx, &available,
		`select available from items where id = $1 for update`, itemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	if !available {
		return model.Booking{}, errors.Wrap(errs.ErrValidation, "item is not available")
	}

	q, args, err := qb.Insert(bookingsTableName).
		Columns("start_date", "end_date", "item_id", "booker_id", "status").
		Values(start, end, itemID, bookerID, model.StatusWaiting).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var id int64
	if err := tx.GetContext(ctx, &id, q, args...); err != nil {
		r.log.Error("CreateBooking", zap.String("q", q), zap.Any("args", args))
		return model.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Booking{}, err
	}

	return r.GetBooking(ctx, id)
}

func (r *repository) GetBooking(ctx context.Context, id int64) (model.Booking, error) {
	q, args, err := r.bookingQuery().
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var booking model.Booking
	if err := r.db.GetContext(ctx, &booking, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return booking, nil
}

// SetBookingStatus performs a compare-and-set transition: only one of two
// concurrent approvals observes the WAITING row and wins.
func (r *repository) SetBookingStatus(ctx context.Context, id int64, from, to model.BookingStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`update bookings set status = $1 where id = $2 and status = $3`, to, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func withState(q sq.SelectBuilder, state model.BookingState, now time.Time) sq.SelectBuilder {
	switch state {
	case model.StateCurrent:
		q = q.Where(sq.LtOrEq{"b.start_date": now}).Where(sq.GtOrEq{"b.end_date": now})
	case model.StatePast:
		q = q.Where(sq.Lt{"b.end_date": now})
	case model.StateFuture:
		q = q.Where(sq.Gt{"b.start_date": now})
	case model.StateWaiting:
		q = q.Where(sq.Eq{"b.status": model.StatusWaiting})
	case model.StateRejected:
		q = q.Where(sq.Eq{"b.status": model.StatusRejected})
	case model.StateAll:
	}
	return q
}

func (r *repository) listBookings(ctx context.Context, base sq.SelectBuilder, state model.BookingState, now time.Time, from, size int) ([]model.Booking, error) {
	q, args, err := withState(base, state, now).
		OrderBy("b.start_date desc").
		Offset(uint64(from)).
		Limit(uint64(size)).
		ToSql()
	if err != nil {
		return nil, err
	}
	bookings := make([]model.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, q, args...); err != nil {
		r.log.Error("listBookings", zap.String("q", q), zap.Any("args", args))
		return nil, err
	}
	return bookings, nil
}

func (r *repository) ListBookingsByBooker(ctx context.Context, bookerID int64, state model.BookingState, now time.Time, from, size int) ([]model.Booking, error) {
	return r.listBookings(ctx, r.bookingQuery().Where(sq.Eq{"b.booker_id": bookerID}), state, now, from, size)
}

func (r *repository) ListBookingsByOwner(ctx context.Context, ownerID int64, state model.BookingState, now time.Time, from, size int) ([]model.Booking, error) {
	return r.listBookings(ctx, r.bookingQuery().Where(sq.Eq{"i.owner_id": ownerID}), state, now, from, size)
}

func (r *repository) LastBookings(ctx context.Context, itemIDs []int64, now time.Time) ([]model.BookingShort, error) {
	if len(itemIDs) == 0 {
		return []model.BookingShort{}, nil
	}
	q, args, err := qb.Select("id", "booker_id", "item_id").
		Options("distinct on (item_id)").
		From(bookingsTableName).
		Where(sq.Eq{"item_id": itemIDs}).
		Where(sq.Eq{"status": model.StatusApproved}).
		Where(sq.LtOrEq{"start_date": now}).
		OrderBy("item_id", "start_date desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	bookings := make([]model.BookingShort, 0)
	if err := r.db.SelectContext(ctx, &bookings, q, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) NextBookings(ctx context.Context, itemIDs []int64, now time.Time) ([]model.BookingShort, error) {
	if len(itemIDs) == 0 {
		return []model.BookingShort{}, nil
	}
	q, args, err := qb.Select("id", "booker_id", "item_id").
		Options("distinct on (item_id)").
		From(bookingsTableName).
		Where(sq.Eq{"item_id": itemIDs}).
		Where(sq.Eq{"status": model.StatusApproved}).
		Where(sq.Gt{"start_date": now}).
		OrderBy("item_id", "start_date asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	bookings := make([]model.BookingShort, 0)
	if err := r.db.SelectContext(ctx, &bookings, q, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `
	select exists(
		select 1 from bookings
		where booker_id = $1 and item_id = $2 and status = $3 and end_date < $4
	)`, bookerID, itemID, model.StatusApproved, now).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
