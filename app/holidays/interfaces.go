package holidays

import (
	"context"

	"github.com/joefazee/holidays/internal/provider"
)

// Source is the upstream holiday registry.
type Source interface {
	GetPublicHolidays(ctx context.Context, countryCode string, year int) ([]provider.Holiday, error)
}

// Fetcher retrieves the public holidays of a country for a year.
type Fetcher interface {
	GetHolidays(ctx context.Context, countryCode string, year int) ([]provider.Holiday, error)
}
