package countries

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/joefazee/holidays/internal/provider"
)

// MockRegistry is a testify mock of Registry.
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) GetAvailableCountries(ctx context.Context) ([]provider.AvailableCountry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.AvailableCountry), args.Error(1)
}

func (m *MockRegistry) GetCountryInfo(ctx context.Context, countryCode string) (*provider.CountryBorders, error) {
	args := m.Called(ctx, countryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.CountryBorders), args.Error(1)
}

// MockDemographics is a testify mock of Demographics.
type MockDemographics struct {
	mock.Mock
}

func (m *MockDemographics) GetPopulations(ctx context.Context) ([]provider.PopulationRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.PopulationRecord), args.Error(1)
}

func (m *MockDemographics) GetFlags(ctx context.Context) ([]provider.FlagRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.FlagRecord), args.Error(1)
}

// MockService is a testify mock of Service.
type MockService struct {
	mock.Mock
}

func (m *MockService) GetAvailableCountries(ctx context.Context) ([]AvailableCountryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]AvailableCountryResponse), args.Error(1)
}

func (m *MockService) GetCountryInfo(ctx context.Context, countryCode string) (*CountryInfoResponse, error) {
	args := m.Called(ctx, countryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CountryInfoResponse), args.Error(1)
}
