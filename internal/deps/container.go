package deps

import (
	"time"

	"gorm.io/gorm"

	"github.com/joefazee/holidays/internal/cache"
	"github.com/joefazee/holidays/internal/logger"
	"github.com/joefazee/holidays/internal/provider"
	"github.com/joefazee/holidays/internal/sanitizer"
	"github.com/joefazee/holidays/internal/security"
)

// Container holds all shared dependencies
type Container struct {
	DB           *gorm.DB
	TokenMaker   security.Maker
	TokenTTL     time.Duration
	Sanitizer    sanitizer.HTMLStripperer
	Logger       logger.Logger
	Cache        cache.Cache[bool]
	Nager        *provider.NagerClient
	CountriesNow *provider.CountriesNowClient

	// Store repositories as interfaces to avoid imports
	repositories map[string]interface{}
	services     map[string]interface{}
}

// NewContainer returns a container with empty registries. Callers fill the exported fields.
func NewContainer() *Container {
	return &Container{
		Logger:       logger.NewNullLogger(),
		repositories: make(map[string]interface{}),
		services:     make(map[string]interface{}),
	}
}

// RegisterRepository stores a repository with a key
func (c *Container) RegisterRepository(key string, repo interface{}) {
	c.repositories[key] = repo
}

// GetRepository retrieves a repository by key
func (c *Container) GetRepository(key string) interface{} {
	return c.repositories[key]
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
