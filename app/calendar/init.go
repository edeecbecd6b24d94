package calendar

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/holidays/app/holidays"
	"github.com/joefazee/holidays/app/user"
	"github.com/joefazee/holidays/internal/deps"
	"github.com/joefazee/holidays/internal/logger"
)

// ForbiddenCalendarMessage is returned when a user targets another user's calendar.
const ForbiddenCalendarMessage = "Forbidden to access a calendar of another user"

// Dependencies represents the dependencies needed for the calendar module
type Dependencies struct {
	Repository Repository
	Users      UserFinder
	Fetcher    holidays.Fetcher
	Logger     logger.Logger
}

// Init wires the calendar service and mounts its routes.
// r must already carry the auth middleware.
func Init(r *gin.RouterGroup, deps Dependencies) Service {
	if deps.Logger == nil {
		deps.Logger = logger.NewNullLogger()
	}

	srvc := NewService(deps.Repository, deps.Users, deps.Fetcher, deps.Logger)
	handler := NewHandler(srvc, deps.Logger)

	calendarGroup := r.Group("/users/:userId/calendar")
	calendarGroup.Use(user.RequireSelf("userId", ForbiddenCalendarMessage))
	calendarGroup.POST("/holidays", handler.AddHolidays)
	calendarGroup.GET("/holidays", handler.GetHolidays)

	return srvc
}

// Mount builds the module from the shared container.
// The user repository must be registered first.
func Mount(r *gin.RouterGroup, c *deps.Container) {
	Init(r, Dependencies{
		Repository: NewRepository(c.DB),
		Users:      c.GetRepository(user.RepoKey).(UserFinder),
		Fetcher:    holidays.NewFetcher(c.Nager),
		Logger:     c.Logger,
	})
}
