package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/cutoff/internal/curve"
	"github.com/tensorplex-labs/cutoff/internal/threshold"
)

// NewServer creates the HTTP API. A nil config uses the defaults and a nil
// selector uses threshold.NewSelector().
func NewServer(serverConfig *ServerConfig, selector *threshold.Selector) *Server {
	if serverConfig == nil {
		serverConfig = &ServerConfig{
			Host:      DefaultServerHost,
			Port:      DefaultServerPort,
			BodyLimit: DefaultBodyLimit,
		}
	}
	if serverConfig.BodyLimit == 0 {
		serverConfig.BodyLimit = DefaultBodyLimit
	}
	if selector == nil {
		selector = threshold.NewSelector()
	}

	log.Info().
		Any("serverConfig", serverConfig).
		Msg("Server configuration loaded")

	app := fiber.New(fiber.Config{
		Prefork:               false,
		DisableStartupMessage: true,
		ErrorHandler:          fiberErrHandler,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		BodyLimit:             serverConfig.BodyLimit,
	})

	app.Use(recover.New()) // add panic recovery
	app.Use(ZstdMiddleware(nil))

	server := &Server{
		App:       app,
		config:    serverConfig,
		selector:  selector,
		validator: validator.New(),
	}

	app.Get(HealthRoute, server.handleHealth)
	app.Post(SelectRoute, server.handleSelect)

	return server
}

func fiberErrHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	log.Error().
		Err(err).
		Int("status_code", code).
		Str("path", ctx.Path()).
		Str("method", ctx.Method()).
		Msg("Fiber error handler triggered")

	return ctx.Status(code).JSON(createResponse(struct{}{}, err))
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(createResponse(HealthResponse{Status: "ok"}, nil))
}

func (s *Server) handleSelect(c *fiber.Ctx) error {
	var req SelectRequest
	if err := sonic.Unmarshal(c.Body(), &req); err != nil {
		log.Error().
			Err(err).
			Str("route", SelectRoute).
			Msg("Failed to parse request body")
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid payload: %v", err))
	}

	if err := s.validator.Struct(req); err != nil {
		log.Error().
			Err(err).
			Str("route", SelectRoute).
			Msg("Request failed validation")
		return fiber.NewError(fiber.StatusBadRequest, extractValidationErrors(err))
	}

	resp, err := s.Select(req)
	if err != nil {
		log.Error().
			Err(err).
			Str("route", SelectRoute).
			Str("strategy", req.Strategy).
			Msg("Selection failed")
		return fiber.NewError(statusFor(err), err.Error())
	}

	return c.JSON(createResponse(resp, nil))
}

// Select runs the request against the server's selector.
func (s *Server) Select(req SelectRequest) (SelectResponse, error) {
	selector := s.selector
	if req.Grid != nil {
		selector = threshold.NewSelector(
			threshold.WithGrid(*req.Grid),
			threshold.WithWorkers(s.selector.Workers),
		)
	}

	var (
		selections []threshold.Selection
		err        error
	)
	if req.Strategy == "" || strings.EqualFold(strings.TrimSpace(req.Strategy), StrategyAll) {
		selections, err = selector.SelectAll(req.Labels, req.Scores)
	} else {
		var strategy threshold.Strategy
		strategy, err = threshold.ParseStrategy(req.Strategy)
		if err != nil {
			return SelectResponse{}, err
		}
		var sel threshold.Selection
		sel, err = selector.Select(strategy, req.Labels, req.Scores)
		selections = []threshold.Selection{sel}
	}
	if err != nil {
		return SelectResponse{}, err
	}

	positives, _ := curve.CountClasses(req.Labels)
	return SelectResponse{
		Selections: threshold.NewResults(selections),
		Samples:    len(req.Labels),
		Positives:  positives,
		NoSkill:    curve.NoSkill(req.Labels),
	}, nil
}

// Address returns the host:port the server listens on.
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", s.Address()).Msg("Server listening")
		errCh <- s.App.Listen(s.Address())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.App.ShutdownWithContext(ctx)
}
