package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/shareit-service/server/internal/model"
)

func (s *Service) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	return s.repo.CreateUser(ctx, req)
}

func (s *Service) GetUser(ctx context.Context, id int64) (model.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return model.User{}, errors.Wrapf(err, "user with id %d", id)
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error) {
	user, err := s.repo.UpdateUser(ctx, id, req)
	if err != nil {
		return model.User{}, errors.Wrapf(err, "user with id %d", id)
	}
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.DeleteUser(ctx, id)
}
