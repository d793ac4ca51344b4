package organization

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoops/staff-backend-go/internal/domain/organization"
	"github.com/restoops/staff-backend-go/internal/repository/memory"
)

func ptr[T any](v T) *T { return &v }

func TestListOrganizations(t *testing.T) {
	store := memory.NewStore()
	main := store.AddOrganization(organization.Organization{Name: "Main hall", Code: ptr("MH"), IsActive: true})
	terrace := store.AddOrganization(organization.Organization{Name: "Terrace", Code: ptr("TR"), IsActive: false})
	svc := NewOrganizationService(store.Organizations())

	tests := []struct {
		name   string
		filter organization.OrganizationFilter
		want   []int64
	}{
		{"all", organization.OrganizationFilter{}, []int64{main.ID, terrace.ID}},
		{"name", organization.OrganizationFilter{Name: ptr("terr")}, []int64{terrace.ID}},
		{"code", organization.OrganizationFilter{Code: ptr("mh")}, []int64{main.ID}},
		{"active only", organization.OrganizationFilter{IsActive: ptr(true)}, []int64{main.ID}},
		{"paged", organization.OrganizationFilter{Limit: 1, Offset: 1}, []int64{terrace.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.ListOrganizations(context.Background(), tt.filter)
			require.NoError(t, err)

			got := make([]int64, 0, len(resp.Organizations))
			for _, o := range resp.Organizations {
				got = append(got, o.ID)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), resp.Count)
		})
	}
}

func TestListOrganizations_InvalidLimit(t *testing.T) {
	svc := NewOrganizationService(memory.NewStore().Organizations())

	_, err := svc.ListOrganizations(context.Background(), organization.OrganizationFilter{Limit: 5000})
	assert.Error(t, err)
}
