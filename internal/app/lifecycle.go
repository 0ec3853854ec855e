package app

import (
	"sync"

	"booksy-collection/internal/controllers"
	"booksy-collection/internal/logger"
)

// Lifecycle runs the application's shutdown sequence exactly once, whether
// it is triggered by the window closing or by a signal.
type Lifecycle struct {
	controller *controllers.MainController
	logger     logger.Logger
	once       sync.Once
	isShutdown bool
}

func NewLifecycle(controller *controllers.MainController, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		controller: controller,
		logger:     log,
	}
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.isShutdown = true
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

		// Every submission is already on disk; only report what is left.
		state := l.controller.State()
		l.logger.Info("Lifecycle", "shutdown sequence completed", map[string]interface{}{
			"screen": state.Screen.String(),
			"books":  l.controller.Catalog().Count(),
		})
	})
}

func (l *Lifecycle) IsShutdown() bool {
	return l.isShutdown
}
