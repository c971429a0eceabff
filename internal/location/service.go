package location

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	dErrors "charity/pkg/domain-errors"
	"charity/pkg/platform/sentinel"
)

// Store is the persistence contract for the lookup tables.
type Store interface {
	ListProvinces(ctx context.Context) ([]Province, error)
	ListCities(ctx context.Context, provinceID int64) ([]City, error)
	FindProvince(ctx context.Context, id int64) (*Province, error)
	FindCity(ctx context.Context, id int64) (*City, error)
	EnsureProvince(ctx context.Context, name string) (*Province, bool, error)
	EnsureCity(ctx context.Context, provinceID int64, name string) (*City, bool, error)
}

type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, logger: logger}
}

func (s *Service) Provinces(ctx context.Context) ([]Province, error) {
	provinces, err := s.store.ListProvinces(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list provinces")
	}
	if provinces == nil {
		provinces = []Province{}
	}
	return provinces, nil
}

// Cities lists cities, optionally restricted to one province.
func (s *Service) Cities(ctx context.Context, provinceID int64) ([]City, error) {
	cities, err := s.store.ListCities(ctx, provinceID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list cities")
	}
	if cities == nil {
		cities = []City{}
	}
	return cities, nil
}

// Resolve checks that both ids exist and that the city lies in the province.
func (s *Service) Resolve(ctx context.Context, provinceID, cityID int64) (*Province, *City, error) {
	province, err := s.store.FindProvince(ctx, provinceID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil, dErrors.New(dErrors.CodeValidation, "province does not exist")
		}
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load province")
	}
	city, err := s.store.FindCity(ctx, cityID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil, dErrors.New(dErrors.CodeValidation, "city does not exist")
		}
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load city")
	}
	if city.ProvinceID != province.ID {
		return nil, nil, dErrors.New(dErrors.CodeValidation, "city does not belong to province")
	}
	return province, city, nil
}

// Names returns display names for the given ids. Unknown ids yield empty names.
func (s *Service) Names(ctx context.Context, provinceID, cityID int64) (string, string) {
	var provinceName, cityName string
	if provinceID > 0 {
		if p, err := s.store.FindProvince(ctx, provinceID); err == nil {
			provinceName = p.Name
		}
	}
	if cityID > 0 {
		if c, err := s.store.FindCity(ctx, cityID); err == nil {
			cityName = c.Name
		}
	}
	return provinceName, cityName
}

// Entry is one province with its cities as found in province_city.json.
type Entry struct {
	Province string `json:"province-fa"`
	Cities   []struct {
		City string `json:"city-fa"`
	} `json:"cities"`
}

// LoadResult counts rows created by Load.
type LoadResult struct {
	ProvincesCreated int
	CitiesCreated    int
}

// Load get-or-creates every province and city in entries. Running it twice is a no-op.
func (s *Service) Load(ctx context.Context, entries []Entry) (LoadResult, error) {
	var res LoadResult
	for _, e := range entries {
		name := strings.TrimSpace(e.Province)
		if name == "" {
			continue
		}
		province, created, err := s.store.EnsureProvince(ctx, name)
		if err != nil {
			return res, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load province "+name)
		}
		if created {
			res.ProvincesCreated++
		}
		for _, c := range e.Cities {
			cityName := strings.TrimSpace(c.City)
			if cityName == "" {
				continue
			}
			_, created, err := s.store.EnsureCity(ctx, province.ID, cityName)
			if err != nil {
				return res, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load city "+cityName)
			}
			if created {
				res.CitiesCreated++
			}
		}
		s.logger.DebugContext(ctx, "province loaded", "province", name, "cities", len(e.Cities))
	}
	return res, nil
}
