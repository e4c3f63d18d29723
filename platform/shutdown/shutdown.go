// Package shutdown handles process termination signals. It keeps a global
// flag that request handlers can consult to tell clients the server is going
// away, and runs registered hooks before letting main exit.
package shutdown

import (
	"sync"
)

var (
	isShutdown bool
	mu         sync.RWMutex
)

// CheckShutdown reports whether a shutdown is in progress
func CheckShutdown() bool {
	mu.RLock()
	defer mu.RUnlock()
	return isShutdown
}

func setShutdown() {
	mu.Lock()
	isShutdown = true
	mu.Unlock()
}

// reset clears the flag and hooks; tests only
func reset() {
	mu.Lock()
	isShutdown = false
	mu.Unlock()

	registry.lock.Lock()
	registry.hooks = nil
	registry.lock.Unlock()
}
