package organization

import "context"

type OrganizationService interface {
	ListOrganizations(ctx context.Context, filter OrganizationFilter) (ListOrganizationResponse, error)
}
