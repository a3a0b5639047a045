package casefilemock

import (
	"context"

	domain "lexcase-backend/internal/domain/casefile"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only the hooks a test sets are exercised; the rest return zero values.
type Repo struct {
	CreateFn        func(ctx context.Context, f *domain.CaseFile) error
	GetByFoyNoFn    func(ctx context.Context, foyNo int) (*domain.CaseFile, error)
	SaveFn          func(ctx context.Context, f *domain.CaseFile) error
	DeleteFn        func(ctx context.Context, foyNo int) error
	ListFn          func(ctx context.Context, p domain.ListParams) ([]domain.CaseFile, int64, error)
	FindByEsasNoFn  func(ctx context.Context, esasNo string) ([]domain.CaseFile, error)
	FindByHukukNoFn func(ctx context.Context, hukukNo string) ([]domain.CaseFile, error)
	FindByPlakaFn   func(ctx context.Context, plaka string) ([]domain.CaseFile, error)
	StatisticsFn    func(ctx context.Context) (*domain.Statistics, error)
}

func (m *Repo) Create(ctx context.Context, f *domain.CaseFile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}

func (m *Repo) GetByFoyNo(ctx context.Context, foyNo int) (*domain.CaseFile, error) {
	if m.GetByFoyNoFn != nil {
		return m.GetByFoyNoFn(ctx, foyNo)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, f *domain.CaseFile) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, f)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, foyNo int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, foyNo)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, p domain.ListParams) ([]domain.CaseFile, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, p)
	}
	return nil, 0, nil
}

func (m *Repo) FindByEsasNo(ctx context.Context, esasNo string) ([]domain.CaseFile, error) {
	if m.FindByEsasNoFn != nil {
		return m.FindByEsasNoFn(ctx, esasNo)
	}
	return nil, nil
}

func (m *Repo) FindByHukukNo(ctx context.Context, hukukNo string) ([]domain.CaseFile, error) {
	if m.FindByHukukNoFn != nil {
		return m.FindByHukukNoFn(ctx, hukukNo)
	}
	return nil, nil
}

func (m *Repo) FindByPlaka(ctx context.Context, plaka string) ([]domain.CaseFile, error) {
	if m.FindByPlakaFn != nil {
		return m.FindByPlakaFn(ctx, plaka)
	}
	return nil, nil
}

func (m *Repo) Statistics(ctx context.Context) (*domain.Statistics, error) {
	if m.StatisticsFn != nil {
		return m.StatisticsFn(ctx)
	}
	return &domain.Statistics{}, nil
}
