package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit-service/server/internal/errs"
	"github.com/Astemirdum/shareit-service/server/internal/model"
)

var itemColumns = []string{"id", "name", "description", "available", "owner_id", "request_id"}

func (r *repository) CreateItem(ctx context.Context, item model.Item) (model.Item, error) {
	q, args, err := qb.Insert(itemsTableName).
		Columns("name", "description", "available", "owner_id", "request_id").
		Values(item.Name, item.Description, item.Available, item.OwnerID, item.RequestID).
		Suffix("returning " + joinColumns(itemColumns)).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}
	var created model.Item
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		r.log.Error("CreateItem", zap.String("q", q), zap.Any("args", args))
		return model.Item{}, err
	}
	return created, nil
}

func (r *repository) GetItem(ctx context.Context, id int64) (model.Item, error) {
	q, args, err := qb.Select(itemColumns...).
		From(itemsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}
	var item model.Item
	if err := r.db.GetContext(ctx, &item, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, errs.ErrNotFound
		}
		return model.Item{}, err
	}
	return item, nil
}

func (r *repository) UpdateItem(ctx context.Context, id int64, req model.UpdateItemRequest) (model.Item, error) {
	if req.Empty() {
		return r.GetItem(ctx, id)
	}
	upd := qb.Update(itemsTableName).Where(sq.Eq{"id": id})
	if req.Name != "" {
		upd = upd.Set("name", req.Name)
	}
	if req.Description != "" {
		upd = upd.Set("description", req.Description)
	}
	if req.Available != nil {
		upd = upd.Set("available", *req.Available)
	}
	q, args, err := upd.Suffix("returning " + joinColumns(itemColumns)).ToSql()
	if err != nil {
		return model.Item{}, err
	}
	var item model.Item
	if err := r.db.GetContext(ctx, &item, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, errs.ErrNotFound
		}
		return model.Item{}, err
	}
	return item, nil
}

func (r *repository) DeleteItem(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(itemsTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) ListItemsByOwner(ctx context.Context, ownerID int64, from, size int) ([]model.Item, error) {
	q, args, err := qb.Select(itemColumns...).
		From(itemsTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		Offset(uint64(from)).
		Limit(uint64(size)).
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Item, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) SearchItems(ctx context.Context, text string, from, size int) ([]model.Item, error) {
	pattern := "%" + text + "%"
	q, args, err := qb.Select(itemColumns...).
		From(itemsTableName).
		Where(sq.Eq{"available": true}).
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		}).
		OrderBy("id").
		Offset(uint64(from)).
		Limit(uint64(size)).
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Item, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		r.log.Error("SearchItems", zap.String("q", q), zap.Any("args", args))
		return nil, err
	}
	return items, nil
}

func (r *repository) ListItemsByRequests(ctx context.Context, requestIDs []int64) ([]model.Item, error) {
	if len(requestIDs) == 0 {
		return []model.Item{}, nil
	}
	q, args, err := qb.Select(itemColumns...).
		From(itemsTableName).
		Where(sq.Eq{"request_id": requestIDs}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Item, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
