package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the echo instance serving the API, its Swagger UI and the
// health check. Every API request is validated against the embedded OpenAPI
// document before it reaches s.
func NewEcho(s *Server) (*echo.Echo, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("creating request validator: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				s.logger.WarnContext(ctx.Request().Context(), "Request", append(attrs, "error", v.Error)...)
				return nil
			}
			s.logger.InfoContext(ctx.Request().Context(), "Request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	registerSwagger()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e, s)

	return e, nil
}
