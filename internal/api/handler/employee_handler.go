package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/employee-api/internal/api/metrics"
	"github.com/peoplehub/employee-api/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee operations. It performs
// no business logic beyond parsing, dispatching, and status translation:
// service errors pass through to the central HTTP error handler.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Create handles POST /api/v1/employee.
//
// @Summary      Create a new employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      employeeRequest  true  "Employee (no id)"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/employee [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.SaveEmployee(c.Request().Context(), toEmployeeInput(req))
	if err != nil {
		return err
	}

	metrics.EmployeesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toEmployeeResponse(created))
}

// List handles GET /api/v1/employee.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}  employeeResponse
// @Router       /api/v1/employee [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.GetAllEmployees(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toEmployeeListResponse(employees))
}

// GetByID handles GET /api/v1/employee/:id.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Param        id   path      integer  true  "Employee id"
// @Success      200  {object}  employeeResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/employee/{id} [get]
func (h *EmployeeHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	employee, err := h.service.GetEmployeeByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

// Update handles PUT /api/v1/employee/:id. The path id is authoritative; an
// id in the body is ignored.
//
// @Summary      Replace an employee's fields
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path      integer          true  "Employee id"
// @Param        body  body      employeeRequest  true  "New field values"
// @Success      200   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/employee/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateEmployeeByID(c.Request().Context(), id, toEmployeeInput(req))
	if err != nil {
		return err
	}

	metrics.EmployeesUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, toEmployeeResponse(updated))
}

// Delete handles DELETE /api/v1/employee/:id.
//
// @Summary      Delete an employee
// @Tags         employees
// @Param        id  path  integer  true  "Employee id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/employee/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteEmployee(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.EmployeesDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// pathID parses the :id path parameter as a decimal unsigned integer.
func pathID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid employee id")
	}
	return id, nil
}
