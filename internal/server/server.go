package server

import (
	"ctchen222/Tic-Tac-Toe-AI/internal/api/controller"
	"ctchen222/Tic-Tac-Toe-AI/internal/validator"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

type Server struct {
	engine *gin.Engine
}

// NewServer builds the advisor's gin engine and registers its routes.
func NewServer(ac *controller.AdvisorController) (*Server, error) {
	if err := validator.RegisterBinding(); err != nil {
		return nil, fmt.Errorf("failed to register request validators: %w", err)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), traceRequests())

	s := &Server{engine: engine}
	s.RegisterHandlers(ac)
	return s, nil
}

func (s *Server) RegisterHandlers(ac *controller.AdvisorController) {
	s.engine.GET("/healthz", ac.Health)

	v1 := s.engine.Group("/v1")
	v1.POST("/moves", ac.SuggestMove)
	v1.POST("/evaluate", ac.Evaluate)
	v1.GET("/results", ac.Results)
}

// Engine exposes the router as an http.Handler.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// traceRequests wraps every request in a span and logs its outcome.
func traceRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		ctx, span := tracer.Start(ctx, "server."+c.Request.Method+" "+route, trace.WithAttributes(
			attribute.String("http.url", c.Request.URL.String()),
			attribute.String("http.method", c.Request.Method),
		), trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, "Server error")
		}
		slog.InfoContext(ctx, "Handled request",
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration", time.Since(start),
		)
	}
}
