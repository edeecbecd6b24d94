package router

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/holidays/internal/deps"
)

// MountFunc represents a function that mounts routes for a module
type MountFunc func(*gin.RouterGroup, *deps.Container)

type Mounter struct {
	container *deps.Container
	prefix    string
}

// NewMounter mounts every group under prefix, e.g. "/api/v1".
func NewMounter(container *deps.Container, prefix string) *Mounter {
	return &Mounter{container: container, prefix: prefix}
}

// Public routes - no authentication required
func (m *Mounter) Public(engine *gin.Engine) *RouteGroup {
	return &RouteGroup{group: engine.Group(m.prefix), container: m.container}
}

// Authenticated routes - requires a valid token
func (m *Mounter) Authenticated(engine *gin.Engine, authMiddleware gin.HandlerFunc) *RouteGroup {
	group := engine.Group(m.prefix)
	group.Use(authMiddleware)
	return &RouteGroup{group: group, container: m.container}
}

type RouteGroup struct {
	group     *gin.RouterGroup
	container *deps.Container
}

// Mount provides a fluent interface for mounting modules
func (rg *RouteGroup) Mount(mountFuncs ...MountFunc) *RouteGroup {
	for _, mountFunc := range mountFuncs {
		mountFunc(rg.group, rg.container)
	}
	return rg
}
