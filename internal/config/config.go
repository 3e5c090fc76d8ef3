package config

import "sync"

// EditorSettings holds tunables shared between the editor shell and the
// rebuild driver.
type EditorSettings struct {
	mu            sync.RWMutex
	chunkSize     int // voxels per chunk edge
	rebuildBudget int // chunks re-meshed per tick, 0 = unlimited
}

var globalSettings = &EditorSettings{
	chunkSize:     16,
	rebuildBudget: 64,
}

// GetChunkSize returns the chunk edge length new worlds are created with.
func GetChunkSize() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.chunkSize
}

// SetChunkSize sets the default chunk edge length.
func SetChunkSize(size int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	// Clamp to reasonable values
	if size < 4 {
		size = 4
	}
	if size > 64 {
		size = 64
	}
	globalSettings.chunkSize = size
}

// GetRebuildBudget returns how many dirty chunks one tick may re-mesh.
func GetRebuildBudget() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.rebuildBudget
}

// SetRebuildBudget sets the per-tick rebuild budget; 0 disables the cap.
func SetRebuildBudget(budget int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if budget < 0 {
		budget = 0
	}
	globalSettings.rebuildBudget = budget
}
