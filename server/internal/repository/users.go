package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit-service/server/internal/errs"
	"github.com/Astemirdum/shareit-service/server/internal/model"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *repository) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("name", "email").
		Values(req.Name, req.Email).
		Suffix("returning id, name, email").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.User{}, errs.ErrEmailExists
		}
		r.log.Error("CreateUser", zap.String("q", q), zap.Any("args", args))
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) GetUser(ctx context.Context, id int64) (model.User, error) {
	q, args, err := qb.Select("id", "name", "email").
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	q, args, err := qb.Select("id", "name", "email").
		From(usersTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0)
	if err := r.db.SelectContext(ctx, &users, q, args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error) {
	if req.Empty() {
		return r.GetUser(ctx, id)
	}
	upd := qb.Update(usersTableName).Where(sq.Eq{"id": id})
	if req.Name != "" {
		upd = upd.Set("name", req.Name)
	}
	if req.Email != "" {
		upd = upd.Set("email", req.Email)
	}
	q, args, err := upd.Suffix("returning id, name, email").ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.User{}, errs.ErrEmailExists
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) DeleteUser(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(usersTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) UserExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`select exists(select 1 from users where id = $1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
