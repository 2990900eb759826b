package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"crocpad/internal/logger"
)

// DefaultTimeout bounds how long one component may take to stop
const DefaultTimeout = 5 * time.Second

type Shutdownable interface {
	Shutdown()
}

type registration struct {
	name      string
	component Shutdownable
}

// Manager stops registered components in reverse order, exactly once
type Manager struct {
	components []registration
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger:  log,
		timeout: DefaultTimeout,
		done:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// SetTimeout changes the per-component shutdown limit
func (m *Manager) SetTimeout(timeout time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.timeout = timeout
}

func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, registration{name: name, component: component})
}

// Listen waits in the background for SIGINT or SIGTERM and then calls
// onSignal, which is expected to quit the UI. Cancelling the manager's
// context stops the listener.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			onSignal()
		case <-m.ctx.Done():
		}
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	m.cancel()

	for i := len(m.components) - 1; i >= 0; i-- {
		reg := m.components[i]

		done := make(chan struct{})
		go func() {
			defer close(done)
			reg.component.Shutdown()
		}()

		select {
		case <-done:
			m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{
				"component": reg.name,
			})
		case <-time.After(m.timeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": reg.name,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
