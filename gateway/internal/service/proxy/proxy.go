package proxy

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Astemirdum/shareit-service/gateway/config"
	cb "github.com/Astemirdum/shareit-service/pkg/circuit_breaker"
)

// Service forwards a request as-is to the core server, preserving method,
// path, query and headers. Each downstream concern gets its own instance so
// circuit breakers trip independently.
type Service struct {
	log    *zap.Logger
	client *http.Client
	addr   string
	cb     cb.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.Config) *Service {
	const (
		recordLength     = 20
		timeout          = 5 * time.Second
		percentile       = 0.5
		recoveryRequests = 3
	)
	return &Service{
		log:    log,
		client: &http.Client{Timeout: time.Minute},
		addr:   net.JoinHostPort(cfg.CoreHTTPServer.Host, cfg.CoreHTTPServer.Port),
		cb:     cb.New(recordLength, timeout, percentile, recoveryRequests),
	}
}

func (s *Service) CB() cb.CircuitBreaker {
	return s.cb
}

// Do forwards the request without a body.
func (s *Service) Do(c echo.Context) ([]byte, int, error) {
	return s.forward(c, http.NoBody)
}

// DoWithBody forwards the request with the already-validated DTO re-encoded
// as the body (binding consumes the original one).
func (s *Service) DoWithBody(c echo.Context, body any) ([]byte, int, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return s.forward(c, bytes.NewReader(data))
}

func (s *Service) forward(c echo.Context, body io.Reader) ([]byte, int, error) {
	in := c.Request()
	ur := *in.URL
	ur.Scheme = "http"
	ur.Host = s.addr

	req, err := http.NewRequestWithContext(in.Context(), in.Method, ur.String(), body)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	req.Header = in.Header.Clone()
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("forward", zap.String("path", in.URL.Path), zap.Error(err))
		return nil, http.StatusBadGateway, err
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, http.StatusBadGateway, err
	}
	return data, resp.StatusCode, nil
}
