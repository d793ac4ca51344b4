package http

import (
	"log/slog"
	"net/http"

	"github.com/restoops/staff-backend-go/internal/domain/employee"
	"github.com/restoops/staff-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := employee.EmployeeFilter{
		Name:           q.OptionalString("name"),
		Login:          q.OptionalString("login"),
		OrganizationID: q.OptionalInt64("organization_id"),
		RoleCode:       q.OptionalString("role_code"),
		Deleted:        q.Bool("deleted", false),
		Status:         q.String("status"),
		Date:           q.String("date"),
		Limit:          q.Int("limit", employee.DefaultListLimit),
		Offset:         q.Int("offset", 0),
	}
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
