// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"

	"github.com/dolist/dolist/internal/domain"
	"github.com/dolist/dolist/internal/infra/config"
	"github.com/dolist/dolist/internal/infra/filestore"
	"github.com/dolist/dolist/internal/infra/logging"
	"github.com/dolist/dolist/internal/tasklist"
)

// Container wires the infrastructure shared by the CLI and the TUI.
type Container struct {
	Store    domain.TaskStore
	Logger   *slog.Logger
	Settings config.Settings

	logCloser io.Closer
}

// New creates a Container with settings loaded from the user config.
func New() (*Container, error) {
	settings, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(logging.DefaultDir(), logging.ParseLevel(settings.LogLevel))
	if err != nil {
		return nil, err
	}

	return &Container{
		Store:     filestore.New(),
		Logger:    logger,
		Settings:  settings,
		logCloser: closer,
	}, nil
}

// NewController creates a fresh, empty task-list controller backed by the
// container's store.
func (c *Container) NewController() *tasklist.Controller {
	return tasklist.New(c.Store)
}

// Close releases container resources.
func (c *Container) Close() error {
	if c.logCloser != nil {
		return c.logCloser.Close()
	}
	return nil
}
