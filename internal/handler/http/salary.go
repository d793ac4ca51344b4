package http

import (
	"log/slog"
	"net/http"

	"github.com/restoops/staff-backend-go/internal/domain/salary"
	"github.com/restoops/staff-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	GetSalary(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// GetSalary implements SalaryHandler.
func (h *salaryHandlerImpl) GetSalary(w http.ResponseWriter, r *http.Request) {
	waiterID, ok := pathID(r, "waiterId")
	if !ok {
		response.HandleError(w, salary.ErrSalaryNotFound)
		return
	}
	q := newQueryParams(r)
	req := salary.SalaryRequest{
		EmployeeID:     waiterID,
		Date:           q.String("date"),
		OrganizationID: q.OptionalInt64("organization_id"),
	}
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.salaryService.CalculateSalary(r.Context(), req)
	if err != nil {
		slog.Error("GetSalary service error", "waiter_id", waiterID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
