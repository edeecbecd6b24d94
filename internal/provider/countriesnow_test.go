package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountriesNowClient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/population", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":false,"msg":"all countries and population","data":[
			{"country":"Ukraine","code":"UKR","iso3":"UKR","populationCounts":[{"year":2017,"value":44831135},{"year":2018,"value":44622516}]}
		]}`))
	})
	mux.HandleFunc("/flag/images", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":false,"msg":"flags images retrieved","data":[
			{"name":"Ukraine","flag":"https://upload.wikimedia.org/ua.svg","iso2":"UA","iso3":"UKR"}
		]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewCountriesNowClient(Config{BaseURL: srv.URL})
	ctx := context.Background()

	t.Run("Populations", func(t *testing.T) {
		records, err := c.GetPopulations(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Ukraine", records[0].Country)
		assert.Equal(t, []PopulationCount{{Year: 2017, Value: 44831135}, {Year: 2018, Value: 44622516}}, records[0].PopulationCounts)
	})

	t.Run("Flags", func(t *testing.T) {
		flags, err := c.GetFlags(ctx)
		require.NoError(t, err)
		require.Len(t, flags, 1)
		assert.Equal(t, FlagRecord{Name: "Ukraine", Flag: "https://upload.wikimedia.org/ua.svg"}, flags[0])
	})
}

func TestCountriesNowClient_EnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":true,"msg":"dataset unavailable","data":[]}`))
	}))
	defer srv.Close()

	c := NewCountriesNowClient(Config{BaseURL: srv.URL})

	_, err := c.GetFlags(context.Background())

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "countriesnow", statusErr.Provider)
	assert.Equal(t, "dataset unavailable", statusErr.Message)
}

func TestCountriesNowClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewCountriesNowClient(Config{BaseURL: srv.URL})

	_, err := c.GetPopulations(context.Background())

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, srv.URL+"/population", statusErr.URL)
}
