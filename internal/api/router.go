package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/peoplehub/employee-api/internal/api/handler"
	"github.com/peoplehub/employee-api/internal/core/service"
	"github.com/peoplehub/employee-api/internal/infrastructure/db/postgres"
	"github.com/peoplehub/employee-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("employee_api"))

	// --- Dependencies ---
	employeeRepo := postgres.NewEmployeeRepository(pool)
	employeeService := service.NewEmployeeService(employeeRepo, log)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	// --- Employee resource ---
	g := e.Group("/api/v1/employee")
	g.POST("", employeeHandler.Create)
	g.GET("", employeeHandler.List)
	g.GET("/:id", employeeHandler.GetByID)
	g.PUT("/:id", employeeHandler.Update)
	g.DELETE("/:id", employeeHandler.Delete)

	// --- Health probes and metrics (no versioned prefix) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(pool)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the database up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
