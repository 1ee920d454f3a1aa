// Package configwatcher reloads data files when they change on disk.
// The tax regime tables use it so slab updates apply without a restart.
package configwatcher

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"finlearn_backend/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch blocks, invoking onChange after each write to path. Writes are
// debounced by one second; editors often fire several events per save.
// Run it in its own goroutine.
func Watch(path string, onChange func(path string) error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal("Failed to create file watcher:", err)
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Fatal("Failed to get absolute path:", err)
	}

	if err := watcher.Add(absPath); err != nil {
		log.Fatal("Failed to watch file:", err)
	}

	var mu sync.Mutex
	timer := time.NewTimer(0)
	<-timer.C

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				mu.Lock()
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(1 * time.Second)
				mu.Unlock()
			}
		case <-timer.C:
			if err := onChange(path); err != nil {
				logger.Log.Error("File reload failed, keeping previous state",
					zap.String("path", path),
					zap.Error(err))
				continue
			}
			logger.Log.Info("File reloaded", zap.String("path", path))
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Log.Error("File watcher error", zap.Error(err))
		}
	}
}
