package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/joefazee/holidays/app"
	"github.com/joefazee/holidays/app/api"
	"github.com/joefazee/holidays/app/database"
	"github.com/joefazee/holidays/app/user"
	"github.com/joefazee/holidays/internal/cache"
	"github.com/joefazee/holidays/internal/logger"
)

const nagerHolidays = `[
	{"date":"2025-01-01","localName":"New Year's Day","name":"New Year's Day","countryCode":"US","global":true,"fixed":false},
	{"date":"2025-12-25","localName":"Christmas Day","name":"Christmas Day","countryCode":"US","global":true,"fixed":false}
]`

type ServerTestSuite struct {
	suite.Suite
	upstream *httptest.Server
	router   *gin.Engine
	closeFn  func()
}

func (suite *ServerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	mux := http.NewServeMux()
	mux.HandleFunc("/PublicHolidays/2025/US", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(nagerHolidays))
	})
	mux.HandleFunc("/AvailableCountries", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"countryCode":"US","name":"United States"}]`))
	})
	suite.upstream = httptest.NewServer(mux)

	cfg := &app.Config{
		DB: database.Config{
			Driver:     database.DriverSQLite,
			SQLitePath: "file:servetest?mode=memory&cache=shared",
		},
		User:  *user.GetDefaultConfig(),
		Cache: app.CacheConfig{Backend: cache.MemoryBackend},
		Providers: app.ProvidersConfig{
			NagerBaseURL:        suite.upstream.URL,
			CountriesNowBaseURL: suite.upstream.URL,
			Timeout:             2 * time.Second,
		},
		Env:     "test",
		Version: "test",
	}

	container, closeFn, err := buildContainer(cfg, logger.NewNullLogger())
	suite.Require().NoError(err)
	suite.closeFn = closeFn
	suite.router = newRouter(cfg, container)
}

func (suite *ServerTestSuite) TearDownSuite() {
	suite.closeFn()
	suite.upstream.Close()
}

func TestServer(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (suite *ServerTestSuite) do(method, path, token string, body interface{}) (int, api.Response) {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var resp api.Response
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func (suite *ServerTestSuite) login(username string) (string, string) {
	creds := map[string]string{"username": username, "password": "password123"}

	code, _ := suite.do(http.MethodPost, "/api/v1/users/signup", "", creds)
	suite.Require().Equal(http.StatusCreated, code)

	code, resp := suite.do(http.MethodPost, "/api/v1/users/login", "", creds)
	suite.Require().Equal(http.StatusOK, code)

	data := resp.Data.(map[string]interface{})
	return data["id"].(string), data["accessToken"].(string)
}

func (suite *ServerTestSuite) TestHealthz() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/healthz", http.NoBody))

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "healthy")
}

func (suite *ServerTestSuite) TestAvailableCountries() {
	code, resp := suite.do(http.MethodGet, "/api/v1/countries/available", "", nil)

	suite.Equal(http.StatusOK, code)
	suite.Len(resp.Data, 1)
}

func (suite *ServerTestSuite) TestSwaggerDoc() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", http.NoBody))

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "/api/v1/users/{userId}/calendar/holidays")
}

func (suite *ServerTestSuite) TestCalendarRequiresToken() {
	code, resp := suite.do(http.MethodGet, "/api/v1/users/"+uuid.NewString()+"/calendar/holidays", "", nil)

	suite.Equal(http.StatusUnauthorized, code)
	suite.Equal("UNAUTHORIZED", resp.Error.Code)
}

func (suite *ServerTestSuite) TestCalendarLifecycle() {
	userID, token := suite.login("alice")
	path := "/api/v1/users/" + userID + "/calendar/holidays"

	code, resp := suite.do(http.MethodPost, path, token, map[string]interface{}{
		"countryCode": "us",
		"year":        2025,
		"holidays":    []string{"Christmas Day"},
	})
	suite.Equal(http.StatusCreated, code)
	suite.Len(resp.Data, 1)

	code, resp = suite.do(http.MethodPost, path, token, map[string]interface{}{"countryCode": "US", "year": 2025})
	suite.Equal(http.StatusCreated, code)
	suite.Len(resp.Data, 2)

	code, resp = suite.do(http.MethodGet, path, token, nil)
	suite.Equal(http.StatusOK, code)
	suite.Len(resp.Data, 3)

	code, resp = suite.do(http.MethodGet, "/api/v1/users/"+uuid.NewString()+"/calendar/holidays", token, nil)
	suite.Equal(http.StatusForbidden, code)
	suite.Equal("Forbidden to access a calendar of another user", resp.Error.Message)

	code, _ = suite.do(http.MethodDelete, "/api/v1/users/"+userID, token, nil)
	suite.Equal(http.StatusOK, code)

	code, _ = suite.do(http.MethodGet, path, token, nil)
	suite.Equal(http.StatusUnauthorized, code)
}

func TestBuildContainer_ClosesDatabaseOnError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *app.Config)
	}{
		{name: "unknown token type", mutate: func(cfg *app.Config) { cfg.User.TokenType = "bogus" }},
		{name: "unknown cache backend", mutate: func(cfg *app.Config) { cfg.Cache.Backend = "bogus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opened *gorm.DB
			t.Cleanup(func() { openDB = database.New })
			openDB = func(c *database.Config) (*gorm.DB, error) {
				db, err := database.New(c)
				opened = db
				return db, err
			}

			cfg := &app.Config{
				DB: database.Config{
					Driver:     database.DriverSQLite,
					SQLitePath: "file:" + uuid.NewString() + "?mode=memory",
				},
				User:  *user.GetDefaultConfig(),
				Cache: app.CacheConfig{Backend: cache.MemoryBackend},
			}
			tt.mutate(cfg)

			container, closeFn, err := buildContainer(cfg, logger.NewNullLogger())

			require.Error(t, err)
			assert.Nil(t, container)
			assert.Nil(t, closeFn)
			require.NotNil(t, opened)
			sqlDB, err := opened.DB()
			require.NoError(t, err)
			assert.ErrorContains(t, sqlDB.Ping(), "database is closed")
		})
	}
}
