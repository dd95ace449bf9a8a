package commands

import (
	"go.uber.org/zap"

	"github.com/datasquad/roomcheck/internal/config"
	"github.com/datasquad/roomcheck/pkg/core/services"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Source services.DataSource
	Logger *zap.Logger
}
