package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/shareit-service/server/internal/repository"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	events EventPublisher

	// now is swappable in tests
	now func() time.Time
}

func NewService(repo repository.Repository, events EventPublisher, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		events: events,
		now:    time.Now,
	}
}
