package http

import (
	"log/slog"
	"net/http"

	"github.com/restoops/staff-backend-go/internal/domain/organization"
	"github.com/restoops/staff-backend-go/internal/handler/http/response"
)

type OrganizationHandler interface {
	ListOrganizations(w http.ResponseWriter, r *http.Request)
}

type organizationHandlerImpl struct {
	organizationService organization.OrganizationService
}

func NewOrganizationHandler(organizationService organization.OrganizationService) OrganizationHandler {
	return &organizationHandlerImpl{organizationService: organizationService}
}

// ListOrganizations implements OrganizationHandler
func (h *organizationHandlerImpl) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := organization.OrganizationFilter{
		Name:     q.OptionalString("name"),
		Code:     q.OptionalString("code"),
		IsActive: q.OptionalBool("is_active"),
		Limit:    q.Int("limit", organization.DefaultListLimit),
		Offset:   q.Int("offset", 0),
	}
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.organizationService.ListOrganizations(r.Context(), filter)
	if err != nil {
		slog.Error("ListOrganizations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
