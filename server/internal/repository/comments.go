package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit-service/server/internal/model"
)

func (r *repository) CreateComment(ctx context.Context, itemID, authorID int64, text string, created time.Time) (model.Comment, error) {
	q, args, err := qb.Insert(commentsTableName).
		Columns("text", "item_id", "author_id", "created").
		Values(text, itemID, authorID, created).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Comment{}, err
	}
	var id int64
	if err := r.db.GetContext(ctx, &id, q, args...); err != nil {
		r.log.Error("CreateComment", zap.String("q", q), zap.Any("args", args))
		return model.Comment{}, err
	}
	return model.Comment{
		ID:      id,
		Text:    text,
		ItemID:  itemID,
		Created: created,
	}, nil
}

func (r *repository) ListCommentsByItems(ctx context.Context, itemIDs []int64) ([]model.Comment, error) {
	if len(itemIDs) == 0 {
		return []model.Comment{}, nil
	}
	q, args, err := qb.Select("c.id", "c.text", "c.item_id", "u.name as author_name", "c.created").
		From(commentsTableName + " c").
		Join(usersTableName + " u on u.id = c.author_id").
		Where(sq.Eq{"c.item_id": itemIDs}).
		OrderBy("c.created asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	comments := make([]model.Comment, 0)
	if err := r.db.SelectContext(ctx, &comments, q, args...); err != nil {
		return nil, err
	}
	return comments, nil
}
