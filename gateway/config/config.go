package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/shareit-service/pkg/logger"
)

type HTTPServer struct {
	Host         string        `envconfig:"GATEWAY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"GATEWAY_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"GATEWAY_HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

// CoreHTTPServer is the address of the core shareit server requests are
// forwarded to.
type CoreHTTPServer struct {
	Host string `envconfig:"SERVER_HTTP_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_HTTP_PORT" default:"8060"`
}

type Config struct {
	Server         HTTPServer
	CoreHTTPServer CoreHTTPServer
	Log            logger.Log
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
