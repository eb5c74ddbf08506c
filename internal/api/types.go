// Package api serves threshold selection over HTTP and provides a client for it.
package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tensorplex-labs/cutoff/internal/threshold"
)

const (
	// Server defaults
	DefaultServerHost = "0.0.0.0"
	DefaultServerPort = 8890
	DefaultBodyLimit  = 4 * 1024 * 1024 // 4MB

	// Client defaults
	DefaultClientTimeout = 30 * time.Second
	DefaultRetryMax      = 3
	DefaultRetryWait     = 500 * time.Millisecond

	// StrategyAll selects with every strategy in one request.
	StrategyAll = "all"

	SelectRoute = "/select"
	HealthRoute = "/health"
)

// Server serves threshold selection requests
type Server struct {
	App       *fiber.App
	config    *ServerConfig
	selector  *threshold.Selector
	validator *validator.Validate
}

type ServerConfig struct {
	Host      string
	Port      int
	BodyLimit int
}

type ClientConfig struct {
	BaseURL         string
	Timeout         time.Duration
	RetryMax        int
	RetryWait       time.Duration
	ZstdCompression bool
}

// StdResponse represents the standardized response structure
type StdResponse[T any] struct {
	Body  T       `json:"body"`
	Error *string `json:"error,omitempty"`
}

// SelectRequest asks for the best threshold of one strategy, or of all of
// them when Strategy is empty or "all". Grid overrides the server's grid for
// the f-score-grid strategy.
type SelectRequest struct {
	Strategy string          `json:"strategy"`
	Labels   []int           `json:"labels" validate:"required,min=1,dive,oneof=0 1"`
	Scores   []float64       `json:"scores" validate:"required,min=1,eqfield=Labels,dive,gte=0,lte=1"`
	Grid     *threshold.Grid `json:"grid,omitempty"`
}

type SelectResponse struct {
	Selections []threshold.Result `json:"selections"`
	Samples    int                `json:"samples"`
	Positives  int                `json:"positives"`
	NoSkill    float64            `json:"no_skill"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
