package casefile

import "context"

type Repository interface {
	Create(ctx context.Context, f *CaseFile) error
	GetByFoyNo(ctx context.Context, foyNo int) (*CaseFile, error)
	Save(ctx context.Context, f *CaseFile) error
	Delete(ctx context.Context, foyNo int) error

	List(ctx context.Context, p ListParams) ([]CaseFile, int64, error)
	FindByEsasNo(ctx context.Context, esasNo string) ([]CaseFile, error)
	FindByHukukNo(ctx context.Context, hukukNo string) ([]CaseFile, error)
	FindByPlaka(ctx context.Context, plaka string) ([]CaseFile, error)

	Statistics(ctx context.Context) (*Statistics, error)
}
