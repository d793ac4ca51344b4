package organization

import (
	"context"
	"fmt"

	"github.com/restoops/staff-backend-go/internal/domain/organization"
)

type OrganizationServiceImpl struct {
	organizationRepo organization.OrganizationRepository
}

func NewOrganizationService(organizationRepo organization.OrganizationRepository) organization.OrganizationService {
	return &OrganizationServiceImpl{organizationRepo: organizationRepo}
}

// ListOrganizations implements organization.OrganizationService.
func (s *OrganizationServiceImpl) ListOrganizations(ctx context.Context, filter organization.OrganizationFilter) (organization.ListOrganizationResponse, error) {
	if err := filter.Validate(); err != nil {
		return organization.ListOrganizationResponse{}, err
	}

	orgs, err := s.organizationRepo.List(ctx, filter)
	if err != nil {
		return organization.ListOrganizationResponse{}, fmt.Errorf("failed to list organizations: %w", err)
	}

	responses := make([]organization.OrganizationResponse, 0, len(orgs))
	for _, o := range orgs {
		responses = append(responses, organization.OrganizationResponse{
			ID:       o.ID,
			IIKOID:   o.IIKOID,
			Name:     o.Name,
			Code:     o.Code,
			IsActive: o.IsActive,
		})
	}

	return organization.ListOrganizationResponse{
		Organizations: responses,
		Count:         len(responses),
	}, nil
}
