package main

import (
	"os"
)

// @title Holidays API
// @version 1.0
// @description Country facts and per-user public holiday calendars.

// @contact.name API Support Team
// @contact.email support@holidays.local

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
