// Package holidays retrieves public holidays from the upstream registry and
// narrows them down to an allow-list of names.
package holidays

import (
	"context"
	"errors"

	"github.com/joefazee/holidays/internal/provider"
	"github.com/joefazee/holidays/models"
)

type fetcher struct {
	source Source
}

// NewFetcher creates a holiday fetcher backed by source.
func NewFetcher(source Source) Fetcher {
	return &fetcher{source: source}
}

// GetHolidays makes exactly one upstream call. A 404 from the registry
// becomes NotFound("holidays"); anything else is returned as is.
func (f *fetcher) GetHolidays(ctx context.Context, countryCode string, year int) ([]provider.Holiday, error) {
	holidays, err := f.source.GetPublicHolidays(ctx, countryCode, year)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			return nil, models.NotFound(models.ResourceHolidays)
		}
		return nil, err
	}
	return holidays, nil
}
