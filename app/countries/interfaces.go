package countries

import (
	"context"

	"github.com/joefazee/holidays/internal/provider"
)

// Registry is the upstream country registry (borders and canonical names).
type Registry interface {
	GetAvailableCountries(ctx context.Context) ([]provider.AvailableCountry, error)
	GetCountryInfo(ctx context.Context, countryCode string) (*provider.CountryBorders, error)
}

// Demographics is the upstream population and flag registry, keyed by country name.
type Demographics interface {
	GetPopulations(ctx context.Context) ([]provider.PopulationRecord, error)
	GetFlags(ctx context.Context) ([]provider.FlagRecord, error)
}

// Service defines the interface for country business logic
type Service interface {
	GetAvailableCountries(ctx context.Context) ([]AvailableCountryResponse, error)
	GetCountryInfo(ctx context.Context, countryCode string) (*CountryInfoResponse, error)
}
