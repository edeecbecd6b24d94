package provider

import (
	"context"
	"net/http"
)

const countriesNowName = "countriesnow"

// PopulationCount is a single year of a population series.
type PopulationCount struct {
	Year  int   `json:"year"`
	Value int64 `json:"value"`
}

// PopulationRecord is the population series of one country.
type PopulationRecord struct {
	Country          string            `json:"country"`
	Code             string            `json:"code"`
	ISO3             string            `json:"iso3"`
	PopulationCounts []PopulationCount `json:"populationCounts"`
}

// FlagRecord maps a country name to its flag image.
type FlagRecord struct {
	Name string `json:"name"`
	Flag string `json:"flag"`
}

type envelope[T any] struct {
	Error bool   `json:"error"`
	Msg   string `json:"msg"`
	Data  []T    `json:"data"`
}

// CountriesNowClient talks to the population and flag registry.
type CountriesNowClient struct {
	*client
}

// NewCountriesNowClient creates a client for the population and flag registry.
func NewCountriesNowClient(cfg Config) *CountriesNowClient {
	return &CountriesNowClient{client: newClient(countriesNowName, cfg)}
}

// GetPopulations returns the full population dataset.
func (c *CountriesNowClient) GetPopulations(ctx context.Context) ([]PopulationRecord, error) {
	return fetchDataset[PopulationRecord](ctx, c.client, "/population")
}

// GetFlags returns the full flag dataset.
func (c *CountriesNowClient) GetFlags(ctx context.Context) ([]FlagRecord, error) {
	return fetchDataset[FlagRecord](ctx, c.client, "/flag/images")
}

func fetchDataset[T any](ctx context.Context, c *client, path string) ([]T, error) {
	var env envelope[T]
	if err := c.getJSON(ctx, path, &env); err != nil {
		return nil, err
	}
	if env.Error {
		return nil, &StatusError{
			Provider:   c.name,
			StatusCode: http.StatusOK,
			URL:        c.baseURL + path,
			Message:    env.Msg,
		}
	}
	return env.Data, nil
}
