package countries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/holidays/internal/provider"
	"github.com/joefazee/holidays/models"
)

func ukraineBorders() *provider.CountryBorders {
	return &provider.CountryBorders{
		CommonName:  "Ukraine",
		CountryCode: "UA",
		Region:      "Europe",
		Borders: []provider.CountryBorders{
			{CommonName: "Poland", OfficialName: "Republic of Poland", CountryCode: "PL", Region: "Europe"},
			{CommonName: "Moldova", OfficialName: "Republic of Moldova", CountryCode: "MD", Region: "Europe"},
		},
	}
}

func populations() []provider.PopulationRecord {
	return []provider.PopulationRecord{
		{Country: "Poland", Code: "POL", PopulationCounts: []provider.PopulationCount{{Year: 2018, Value: 37974750}}},
		{Country: "Ukraine", Code: "UKR", PopulationCounts: []provider.PopulationCount{
			{Year: 2017, Value: 44831135},
			{Year: 2018, Value: 44622516},
		}},
	}
}

func flags() []provider.FlagRecord {
	return []provider.FlagRecord{
		{Name: "Poland", Flag: "https://flags.example/pl.svg"},
		{Name: "Ukraine", Flag: "https://flags.example/ua.svg"},
	}
}

func TestService_GetCountryInfo(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		registry := new(MockRegistry)
		demographics := new(MockDemographics)
		srvc := NewService(registry, demographics, nil)
		ctx := context.Background()

		registry.On("GetCountryInfo", ctx, "UA").Return(ukraineBorders(), nil)
		demographics.On("GetPopulations", mock.Anything).Return(populations(), nil)
		demographics.On("GetFlags", mock.Anything).Return(flags(), nil)

		result, err := srvc.GetCountryInfo(ctx, "UA")

		require.NoError(t, err)
		assert.Equal(t, "Ukraine", result.CommonName)
		require.Len(t, result.Borders, 2)
		assert.Equal(t, "PL", result.Borders[0].CountryCode)
		assert.Equal(t, []PopulationCountResponse{{Year: 2017, Value: 44831135}, {Year: 2018, Value: 44622516}}, result.PopulationInfo)
		assert.Equal(t, "https://flags.example/ua.svg", result.FlagURL)
		registry.AssertExpectations(t)
		demographics.AssertExpectations(t)
	})

	t.Run("Country Not Found", func(t *testing.T) {
		registry := new(MockRegistry)
		demographics := new(MockDemographics)
		srvc := NewService(registry, demographics, nil)
		ctx := context.Background()

		registry.On("GetCountryInfo", ctx, "ZZ").Return(nil, provider.ErrNotFound)

		result, err := srvc.GetCountryInfo(ctx, "ZZ")

		assert.Nil(t, result)
		assert.True(t, models.IsNotFound(err, models.ResourceCountry))
		demographics.AssertNotCalled(t, "GetPopulations", mock.Anything)
		demographics.AssertNotCalled(t, "GetFlags", mock.Anything)
	})

	t.Run("Registry Transport Error Propagates", func(t *testing.T) {
		registry := new(MockRegistry)
		demographics := new(MockDemographics)
		srvc := NewService(registry, demographics, nil)
		ctx := context.Background()

		upstream := &provider.StatusError{Provider: "nager", StatusCode: 500}
		registry.On("GetCountryInfo", ctx, "US").Return(nil, upstream)

		result, err := srvc.GetCountryInfo(ctx, "US")

		assert.Nil(t, result)
		assert.Same(t, upstream, err)
	})

	t.Run("Population Not Found Regardless Of Flag", func(t *testing.T) {
		tests := []struct {
			name    string
			flags   []provider.FlagRecord
			flagErr error
		}{
			{name: "flag present", flags: flags()},
			{name: "flag missing", flags: []provider.FlagRecord{{Name: "Poland", Flag: "https://flags.example/pl.svg"}}},
			{name: "flag fetch fails", flagErr: &provider.StatusError{Provider: "countriesnow", StatusCode: 503}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				registry := new(MockRegistry)
				demographics := new(MockDemographics)
				srvc := NewService(registry, demographics, nil)
				ctx := context.Background()

				registry.On("GetCountryInfo", ctx, "UA").Return(ukraineBorders(), nil)
				demographics.On("GetPopulations", mock.Anything).Return(populations()[:1], nil)
				if tt.flagErr != nil {
					demographics.On("GetFlags", mock.Anything).Return(nil, tt.flagErr)
				} else {
					demographics.On("GetFlags", mock.Anything).Return(tt.flags, nil)
				}

				result, err := srvc.GetCountryInfo(ctx, "UA")

				assert.Nil(t, result)
				assert.True(t, models.IsNotFound(err, models.ResourcePopulation))
			})
		}
	})

	t.Run("Population Fetch Error Wins Over Flag Result", func(t *testing.T) {
		registry := new(MockRegistry)
		demographics := new(MockDemographics)
		srvc := NewService(registry, demographics, nil)
		ctx := context.Background()

		upstream := &provider.StatusError{Provider: "countriesnow", StatusCode: 502}
		registry.On("GetCountryInfo", ctx, "UA").Return(ukraineBorders(), nil)
		demographics.On("GetPopulations", mock.Anything).Return(nil, upstream)
		demographics.On("GetFlags", mock.Anything).Return(nil, assert.AnError)

		result, err := srvc.GetCountryInfo(ctx, "UA")

		assert.Nil(t, result)
		assert.Same(t, upstream, err)
	})

	t.Run("Empty Common Name Is Malformed", func(t *testing.T) {
		registry := new(MockRegistry)
		demographics := new(MockDemographics)
		srvc := NewService(registry, demographics, nil)
		ctx := context.Background()

		registry.On("GetCountryInfo", ctx, "UA").Return(&provider.CountryBorders{CountryCode: "UA"}, nil)

		result, err := srvc.GetCountryInfo(ctx, "UA")

		assert.Nil(t, result)
		var decodeErr *provider.DecodeError
		assert.ErrorAs(t, err, &decodeErr)
		assert.False(t, models.IsNotFound(err, ""))
		demographics.AssertNotCalled(t, "GetPopulations", mock.Anything)
		demographics.AssertNotCalled(t, "GetFlags", mock.Anything)
	})

	t.Run("Flag Not Found", func(t *testing.T) {
		registry := new(MockRegistry)
		demographics := new(MockDemographics)
		srvc := NewService(registry, demographics, nil)
		ctx := context.Background()

		registry.On("GetCountryInfo", ctx, "UA").Return(ukraineBorders(), nil)
		demographics.On("GetPopulations", mock.Anything).Return(populations(), nil)
		demographics.On("GetFlags", mock.Anything).Return(flags()[:1], nil)

		result, err := srvc.GetCountryInfo(ctx, "UA")

		assert.Nil(t, result)
		assert.True(t, models.IsNotFound(err, models.ResourceFlag))
	})

	t.Run("Name Match Is Exact", func(t *testing.T) {
		registry := new(MockRegistry)
		demographics := new(MockDemographics)
		srvc := NewService(registry, demographics, nil)
		ctx := context.Background()

		registry.On("GetCountryInfo", ctx, "UA").Return(ukraineBorders(), nil)
		demographics.On("GetPopulations", mock.Anything).Return([]provider.PopulationRecord{{Country: "ukraine"}}, nil)
		demographics.On("GetFlags", mock.Anything).Return(flags(), nil)

		_, err := srvc.GetCountryInfo(ctx, "UA")

		assert.True(t, models.IsNotFound(err, models.ResourcePopulation))
	})

	t.Run("Demographics Error Propagates", func(t *testing.T) {
		registry := new(MockRegistry)
		demographics := new(MockDemographics)
		srvc := NewService(registry, demographics, nil)
		ctx := context.Background()

		registry.On("GetCountryInfo", ctx, "UA").Return(ukraineBorders(), nil)
		demographics.On("GetPopulations", mock.Anything).Return(populations(), nil)
		demographics.On("GetFlags", mock.Anything).Return(nil, assert.AnError)

		result, err := srvc.GetCountryInfo(ctx, "UA")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, models.IsNotFound(err, ""))
	})
}

func TestService_GetAvailableCountries(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		registry := new(MockRegistry)
		srvc := NewService(registry, new(MockDemographics), nil)
		ctx := context.Background()

		registry.On("GetAvailableCountries", ctx).Return([]provider.AvailableCountry{
			{CountryCode: "US", Name: "United States"},
			{CountryCode: "UA", Name: "Ukraine"},
		}, nil)

		result, err := srvc.GetAvailableCountries(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []AvailableCountryResponse{
			{CountryCode: "US", Name: "United States"},
			{CountryCode: "UA", Name: "Ukraine"},
		}, result)
	})

	t.Run("Registry Error", func(t *testing.T) {
		registry := new(MockRegistry)
		srvc := NewService(registry, new(MockDemographics), nil)
		ctx := context.Background()

		registry.On("GetAvailableCountries", ctx).Return(nil, assert.AnError)

		result, err := srvc.GetAvailableCountries(ctx)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
