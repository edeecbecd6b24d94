package holidays

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/joefazee/holidays/internal/provider"
)

// MockSource is a testify mock of Source.
type MockSource struct {
	mock.Mock
}

func (m *MockSource) GetPublicHolidays(ctx context.Context, countryCode string, year int) ([]provider.Holiday, error) {
	args := m.Called(ctx, countryCode, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.Holiday), args.Error(1)
}

// MockFetcher is a testify mock of Fetcher.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) GetHolidays(ctx context.Context, countryCode string, year int) ([]provider.Holiday, error) {
	args := m.Called(ctx, countryCode, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.Holiday), args.Error(1)
}
