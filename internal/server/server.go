package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/limaJavier/boarding/internal/logger"
	"github.com/limaJavier/boarding/internal/metrics"
	"github.com/limaJavier/boarding/pkg/boarding"
	"github.com/limaJavier/boarding/pkg/layout"
	"github.com/limaJavier/boarding/pkg/render"
)

// Server serves assignments and charts of a single, read-only seat grid
type Server struct {
	grid     *layout.SeatGrid
	options  boarding.Options
	aircraft string
	logger   *slog.Logger
	echo     *echo.Echo
}

func New(grid *layout.SeatGrid, options boarding.Options, aircraft string, l *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	server := &Server{
		grid:     grid,
		options:  options,
		aircraft: aircraft,
		logger:   l,
		echo:     e,
	}

	e.Use(logger.AccessMiddleware(l))
	e.Use(observe)
	server.registerRoutes()
	return server
}

func (server *Server) registerRoutes() {
	e := server.echo
	e.GET("/healthz", server.health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/strategies", server.listStrategies)
	v1.GET("/strategies/:id/assignment", server.assignment)
	v1.GET("/strategies/:id/seats/:seat", server.seat)
	v1.GET("/workbook.xlsx", server.workbook)
	for _, format := range render.Formats() {
		v1.GET("/strategies/:id/chart."+format, server.strategyChart(format))
		v1.GET("/layout."+format, server.layoutChart(format))
	}
}

// Handler exposes the routes for tests and for embedding in another server
func (server *Server) Handler() http.Handler { return server.echo }

// Start serves on addr until Shutdown is called
func (server *Server) Start(addr string) error {
	server.logger.Info("server_listen", "addr", addr, "grid", server.grid.String())
	if err := server.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (server *Server) Shutdown(ctx context.Context) error {
	return server.echo.Shutdown(ctx)
}

// assign computes an assignment with the server options overridden by the query string
func (server *Server) assign(c echo.Context) (*boarding.Assignment, error) {
	id, err := boarding.ParseStrategyId(c.Param("id"))
	if err != nil {
		return nil, err
	}

	options, err := server.queryOptions(c)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	assignment, err := boarding.Assign(id, server.grid, options)
	metrics.ObserveAssignment(string(id), start, err)
	if err != nil {
		server.logger.Debug("assignment_error", "strategy", id, "err", err)
		return nil, err
	}
	return assignment, nil
}

// queryOptions overrides the server options with the first value of each query parameter
func (server *Server) queryOptions(c echo.Context) (boarding.Options, error) {
	raw := make(map[string]any)
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			raw[key] = values[0]
		}
	}
	return server.options.With(raw)
}

// observe records route-level request metrics
func observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		status := c.Response().Status
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
		} else if err != nil {
			status = http.StatusInternalServerError
		}
		metrics.ObserveRequest(c.Path(), status, time.Since(start))
		return err
	}
}

// httpError maps domain errors onto status codes
func httpError(err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, boarding.ErrUnknownStrategy):
		code = http.StatusNotFound
	case errors.Is(err, boarding.ErrInvalidConfiguration),
		errors.Is(err, layout.ErrInvalidLayout),
		errors.Is(err, boarding.ErrUnknownSeat),
		errors.Is(err, boarding.ErrNotGrouped):
		code = http.StatusBadRequest
	}
	return echo.NewHTTPError(code, err.Error()).SetInternal(err)
}
