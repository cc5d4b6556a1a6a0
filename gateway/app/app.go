package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/shareit-service/gateway/config"
	"github.com/Astemirdum/shareit-service/gateway/internal/handler"
	"github.com/Astemirdum/shareit-service/gateway/internal/service/proxy"
	"github.com/Astemirdum/shareit-service/pkg/httpserver"
	"github.com/Astemirdum/shareit-service/pkg/logger"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "gateway")

	h := handler.New(
		proxy.NewService(log.Named("users"), *cfg),
		proxy.NewService(log.Named("items"), *cfg),
		proxy.NewService(log.Named("bookings"), *cfg),
		proxy.NewService(log.Named("requests"), *cfg),
		log,
	)

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

	if err := srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}
