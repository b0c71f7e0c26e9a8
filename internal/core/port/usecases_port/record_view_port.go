package usecases_port

import "context"

type RecordViewUseCase interface {
	Execute(ctx context.Context, propertyID string) (int, error)
}
