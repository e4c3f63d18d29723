package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rohanthewiz/logger"
)

const gracePeriod = 15 * time.Second

type HookFunc func(grace time.Duration) error

type shutdownHooks struct {
	hooks []HookFunc
	lock  sync.Mutex
}

var registry shutdownHooks

// RegisterHook adds fn to the hooks run when a shutdown signal arrives
func RegisterHook(fn HookFunc) {
	registry.lock.Lock()
	defer registry.lock.Unlock()
	registry.hooks = append(registry.hooks, fn)
}

// InitShutdownService waits for SIGINT or SIGTERM in the background,
// runs the registered hooks, then closes done so main can return.
func InitShutdownService(done chan struct{}) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("Received shutdown signal", "signal", sig.String())
		runHooks(gracePeriod)
		close(done)
	}()
}

// runHooks marks the process as shutting down and fires all hooks concurrently,
// waiting at most grace for them to finish
func runHooks(grace time.Duration) {
	setShutdown()

	registry.lock.Lock()
	hooks := append([]HookFunc(nil), registry.hooks...)
	registry.lock.Unlock()

	logger.F("Running %d shutdown hooks (grace period is: %s)", len(hooks), grace)

	wg := sync.WaitGroup{}
	for i, hook := range hooks {
		wg.Add(1)
		go func(idx int, fn HookFunc) {
			defer wg.Done()
			if err := fn(grace); err != nil {
				logger.LogErr(err, "shutdown hook failed")
				return
			}
			logger.Debug("Shutdown hook completed", "hook", idx)
		}(i, hook)
	}

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		logger.Info("All shutdown hooks completed")
	case <-time.After(grace):
		logger.Warn("Shutdown hooks timed out", "grace", grace.String())
	}
}
