package provider

import (
	"context"
	"fmt"
	"net/url"
)

const nagerName = "nager"

// AvailableCountry is one entry of the country registry.
type AvailableCountry struct {
	CountryCode string `json:"countryCode"`
	Name        string `json:"name"`
}

// CountryBorders is the country-info document. CommonName is the canonical
// name used to join against the population and flag datasets.
type CountryBorders struct {
	CommonName   string           `json:"commonName"`
	OfficialName string           `json:"officialName"`
	CountryCode  string           `json:"countryCode"`
	Region       string           `json:"region"`
	Borders      []CountryBorders `json:"borders"`
}

// Holiday is one public holiday as published by the registry.
type Holiday struct {
	Date        string   `json:"date"`
	LocalName   string   `json:"localName"`
	Name        string   `json:"name"`
	CountryCode string   `json:"countryCode"`
	Global      bool     `json:"global"`
	Fixed       bool     `json:"fixed"`
	Types       []string `json:"types,omitempty"`
}

// NagerClient talks to the country and public holiday registry.
type NagerClient struct {
	*client
}

// NewNagerClient creates a client for the country and holiday registry.
func NewNagerClient(cfg Config) *NagerClient {
	return &NagerClient{client: newClient(nagerName, cfg)}
}

// GetAvailableCountries lists every country the registry knows about.
func (c *NagerClient) GetAvailableCountries(ctx context.Context) ([]AvailableCountry, error) {
	var countries []AvailableCountry
	if err := c.getJSON(ctx, "/AvailableCountries", &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// GetCountryInfo returns the country document with its borders.
// Unknown codes yield ErrNotFound.
func (c *NagerClient) GetCountryInfo(ctx context.Context, countryCode string) (*CountryBorders, error) {
	var info CountryBorders
	if err := c.getJSON(ctx, "/CountryInfo/"+url.PathEscape(countryCode), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetPublicHolidays returns the holidays of countryCode for year.
// Unknown codes yield ErrNotFound.
func (c *NagerClient) GetPublicHolidays(ctx context.Context, countryCode string, year int) ([]Holiday, error) {
	var holidays []Holiday
	path := fmt.Sprintf("/PublicHolidays/%d/%s", year, url.PathEscape(countryCode))
	if err := c.getJSON(ctx, path, &holidays); err != nil {
		return nil, err
	}
	return holidays, nil
}
