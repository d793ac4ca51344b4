package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/restoops/staff-backend-go/internal/domain/penalty"
	"github.com/restoops/staff-backend-go/internal/handler/http/response"
)

type FineHandler interface {
	CreateFine(w http.ResponseWriter, r *http.Request)
}

type fineHandlerImpl struct {
	fineService penalty.FineService
}

func NewFineHandler(fineService penalty.FineService) FineHandler {
	return &fineHandlerImpl{fineService: fineService}
}

// CreateFine implements FineHandler.
func (h *fineHandlerImpl) CreateFine(w http.ResponseWriter, r *http.Request) {
	var req penalty.CreateFineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateFine decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.fineService.CreateFine(r.Context(), req)
	if err != nil {
		slog.Error("CreateFine service error", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Fine created successfully", resp)
}
