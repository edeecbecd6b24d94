package countries

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/holidays/internal/deps"
	"github.com/joefazee/holidays/internal/logger"
)

// Dependencies represents the dependencies needed for the countries module
type Dependencies struct {
	Registry     Registry
	Demographics Demographics
	Logger       logger.Logger
}

// Init wires the country aggregator and mounts its public routes
func Init(r *gin.RouterGroup, deps Dependencies) Service {
	if deps.Logger == nil {
		deps.Logger = logger.NewNullLogger()
	}

	srvc := NewService(deps.Registry, deps.Demographics, deps.Logger)
	handler := NewHandler(srvc, deps.Logger)

	countriesGroup := r.Group("/countries")
	countriesGroup.GET("/available", handler.GetAvailableCountries)
	countriesGroup.GET("/:code/info", handler.GetCountryInfo)

	return srvc
}

// Mount builds the module from the shared container.
func Mount(r *gin.RouterGroup, c *deps.Container) {
	Init(r, Dependencies{
		Registry:     c.Nager,
		Demographics: c.CountriesNow,
		Logger:       c.Logger,
	})
}
