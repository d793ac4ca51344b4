package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/restoops/staff-backend-go/internal/domain/shift"
	"github.com/restoops/staff-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	GetShiftSummary(w http.ResponseWriter, r *http.Request)
	GetShiftStatus(w http.ResponseWriter, r *http.Request)
	UpdateShiftTime(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &shiftHandlerImpl{shiftService: shiftService}
}

// GetShiftSummary implements ShiftHandler.
func (h *shiftHandlerImpl) GetShiftSummary(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := shift.ShiftSummaryFilter{
		Date:           q.String("date"),
		EmployeeID:     q.OptionalInt64("employee_id"),
		OrganizationID: q.OptionalInt64("organization_id"),
	}
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.shiftService.GetShiftSummary(r.Context(), filter)
	if err != nil {
		slog.Error("GetShiftSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// GetShiftStatus implements ShiftHandler.
func (h *shiftHandlerImpl) GetShiftStatus(w http.ResponseWriter, r *http.Request) {
	waiterID, ok := pathID(r, "waiterId")
	if !ok {
		response.HandleError(w, shift.ErrInvalidEmployeeID)
		return
	}
	q := newQueryParams(r)
	orgID := q.OptionalInt64("organization_id")
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	status, err := h.shiftService.GetEmployeeShiftStatus(r.Context(), waiterID, orgID)
	if err != nil {
		slog.Error("GetShiftStatus service error", "waiter_id", waiterID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// UpdateShiftTime implements ShiftHandler.
func (h *shiftHandlerImpl) UpdateShiftTime(w http.ResponseWriter, r *http.Request) {
	waiterID, ok := pathID(r, "waiterId")
	if !ok {
		response.HandleError(w, shift.ErrInvalidEmployeeID)
		return
	}

	var req shift.UpdateShiftTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateShiftTime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = waiterID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.shiftService.UpdateShiftTime(r.Context(), req); err != nil {
		slog.Error("UpdateShiftTime service error", "waiter_id", waiterID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift time updated", "waiter_id", waiterID, "shift_time", req.ShiftTime)
	response.SuccessWithMessage(w, "Shift time updated", map[string]string{"shiftTime": req.ShiftTime})
}
