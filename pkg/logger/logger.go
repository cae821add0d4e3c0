package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the application logger. Development mode gives human-readable
// output, everything else logs structured JSON.
func New() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
