package countries

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/joefazee/holidays/internal/logger"
	"github.com/joefazee/holidays/internal/provider"
	"github.com/joefazee/holidays/models"
)

var errEmptyCommonName = errors.New("country info has no common name")

// service implements the Service interface
type service struct {
	registry     Registry
	demographics Demographics
	logger       logger.Logger
}

// NewService creates a new country service
func NewService(registry Registry, demographics Demographics, log logger.Logger) Service {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &service{
		registry:     registry,
		demographics: demographics,
		logger:       log,
	}
}

// GetAvailableCountries lists the countries known to the registry
func (s *service) GetAvailableCountries(ctx context.Context) ([]AvailableCountryResponse, error) {
	countries, err := s.registry.GetAvailableCountries(ctx)
	if err != nil {
		return nil, err
	}
	return ToAvailableCountryResponseList(countries), nil
}

// GetCountryInfo resolves the canonical name from the registry, then joins the
// population and flag datasets on it. Any missing facet fails the whole call.
func (s *service) GetCountryInfo(ctx context.Context, countryCode string) (*CountryInfoResponse, error) {
	info, err := s.registry.GetCountryInfo(ctx, countryCode)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			return nil, models.NotFound(models.ResourceCountry)
		}
		return nil, err
	}

	if info.CommonName == "" {
		return nil, &provider.DecodeError{
			Provider: "nager",
			URL:      "/CountryInfo/" + countryCode,
			Cause:    errEmptyCommonName,
		}
	}

	var (
		populations []provider.PopulationRecord
		flags       []provider.FlagRecord
		popErr      error
		flagErr     error
	)

	// Neither fetch cancels the other; the outcome is decided after both finish.
	var g errgroup.Group
	g.Go(func() error {
		populations, popErr = s.demographics.GetPopulations(ctx)
		return nil
	})
	g.Go(func() error {
		flags, flagErr = s.demographics.GetFlags(ctx)
		return nil
	})
	_ = g.Wait()

	fields := map[string]interface{}{"country_code": countryCode, "common_name": info.CommonName}

	if popErr != nil {
		s.logger.Error(popErr, fields)
		return nil, popErr
	}
	population := findPopulation(populations, info.CommonName)
	if population == nil {
		return nil, models.NotFound(models.ResourcePopulation)
	}

	if flagErr != nil {
		s.logger.Error(flagErr, fields)
		return nil, flagErr
	}
	flag := findFlag(flags, info.CommonName)
	if flag == nil {
		return nil, models.NotFound(models.ResourceFlag)
	}

	return ToCountryInfoResponse(info, population, flag), nil
}

func findPopulation(records []provider.PopulationRecord, name string) *provider.PopulationRecord {
	for i := range records {
		if records[i].Country == name {
			return &records[i]
		}
	}
	return nil
}

func findFlag(records []provider.FlagRecord, name string) *provider.FlagRecord {
	for i := range records {
		if records[i].Name == name {
			return &records[i]
		}
	}
	return nil
}
