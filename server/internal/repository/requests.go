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

var requestColumns = []string{"id", "description", "requester_id", "created"}

func (r *repository) CreateRequest(ctx context.Context, requesterID int64, description string, created time.Time) (model.ItemRequest, error) {
	q, args, err := qb.Insert(requestsTableName).
		Columns("description", "requester_id", "created").
		Values(description, requesterID, created).
		Suffix("returning " + joinColumns(requestColumns)).
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}
	var req model.ItemRequest
	if err := r.db.GetContext(ctx, &req, q, args...); err != nil {
		r.log.Error("CreateRequest", zap.String("q", q), zap.Any("args", args))
		return model.ItemRequest{}, err
	}
	return req, nil
}

func (r *repository) GetRequest(ctx context.Context, id int64) (model.ItemRequest, error) {
	q, args, err := qb.Select(requestColumns...).
		From(requestsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}
	var req model.ItemRequest
	if err := r.db.GetContext(ctx, &req, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ItemRequest{}, errs.ErrNotFound
		}
		return model.ItemRequest{}, err
	}
	return req, nil
}

func (r *repository) listRequests(ctx context.Context, cond sq.Sqlizer, from, size int) ([]model.ItemRequest, error) {
	q, args, err := qb.Select(requestColumns...).
		From(requestsTableName).
		Where(cond).
		OrderBy("created desc").
		Offset(uint64(from)).
		Limit(uint64(size)).
		ToSql()
	if err != nil {
		return nil, err
	}
	requests := make([]model.ItemRequest, 0)
	if err := r.db.SelectContext(ctx, &requests, q, args...); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *repository) ListRequestsByRequester(ctx context.Context, requesterID int64, from, size int) ([]model.ItemRequest, error) {
	return r.listRequests(ctx, sq.Eq{"requester_id": requesterID}, from, size)
}

func (r *repository) ListRequestsExcept(ctx context.Context, requesterID int64, from, size int) ([]model.ItemRequest, error) {
	return r.listRequests(ctx, sq.NotEq{"requester_id": requesterID}, from, size)
}
