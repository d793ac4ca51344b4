package penalty

import "context"

type FineService interface {
	CreateFine(ctx context.Context, req CreateFineRequest) (CreateFineResponse, error)
}
