package offices

import (
	"context"

	"github.com/firstoffice/officebooking/internal/domain"
	"github.com/firstoffice/officebooking/internal/repository"
)

type OfficeUseCase interface {
	ListOffices(ctx context.Context) ([]domain.Office, error)
	GetOfficeBySlug(ctx context.Context, slug string) (*domain.Office, error)
	ListCities(ctx context.Context) ([]domain.City, error)
	GetCityBySlug(ctx context.Context, slug string) (*domain.City, error)
}

// Cache holds the catalog listings the storefront reads on every visit.
type Cache interface {
	GetOffices(ctx context.Context) ([]domain.Office, error)
	SetOffices(ctx context.Context, offices []domain.Office) error
	GetCities(ctx context.Context) ([]domain.City, error)
	SetCities(ctx context.Context, cities []domain.City) error
}

type OfficeService struct {
	repo  repository.OfficeRepository
	cache Cache
}

func NewOfficeService(repo repository.OfficeRepository, cache Cache) *OfficeService {
	return &OfficeService{repo: repo, cache: cache}
}

func (s *OfficeService) ListOffices(ctx context.Context) ([]domain.Office, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetOffices(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	offices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetOffices(ctx, offices)
	}
	return offices, nil
}

func (s *OfficeService) GetOfficeBySlug(ctx context.Context, slug string) (*domain.Office, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *OfficeService) ListCities(ctx context.Context) ([]domain.City, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetCities(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	cities, err := s.repo.ListCities(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetCities(ctx, cities)
	}
	return cities, nil
}

func (s *OfficeService) GetCityBySlug(ctx context.Context, slug string) (*domain.City, error) {
	return s.repo.GetCityBySlug(ctx, slug)
}

var _ OfficeUseCase = (*OfficeService)(nil)
