package organization

import "context"

type OrganizationRepository interface {
	List(ctx context.Context, filter OrganizationFilter) ([]Organization, error)
}
