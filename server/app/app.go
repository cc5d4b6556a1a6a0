package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/shareit-service/pkg/httpserver"
	"github.com/Astemirdum/shareit-service/pkg/kafka"
	"github.com/Astemirdum/shareit-service/pkg/logger"
	"github.com/Astemirdum/shareit-service/pkg/postgres"
	"github.com/Astemirdum/shareit-service/server/config"
	"github.com/Astemirdum/shareit-service/server/internal/handler"
	"github.com/Astemirdum/shareit-service/server/internal/repository"
	"github.com/Astemirdum/shareit-service/server/internal/service"
	"github.com/Astemirdum/shareit-service/server/migrations"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "server")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %v", err)
	}

	events := service.NewNopPublisher()
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka.NewProducer %v", err)
		}
		defer producer.Close() //nolint:errcheck
		events = service.NewKafkaPublisher(producer)
	}

	svc := service.NewService(repo, events, log)
	h := handler.New(svc, svc, svc, svc, log)

	srv := httpserver.NewServer(httpserver.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
