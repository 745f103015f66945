package main

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watch calls update whenever one of files is written to, until ctx is done. Errors returned by
// update are logged and don't stop watching.
func watch(ctx context.Context, files []string, update func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %v", err)
	}
	defer watcher.Close()

	// Watch the parent directories, editors often replace files instead of writing to them.
	watched := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("resolving %s: %v", f, err)
		}
		watched[abs] = true
		if dir := filepath.Dir(abs); !slices.Contains(watcher.WatchList(), dir) {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("starting watch: %v", err)
			}
		}
	}
	logger.Info("Watching, press Ctrl-C to stop", zap.Strings("files", files))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Absolutely no need to react to chmod.
			if event.Has(fsnotify.Chmod) || !watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				logger.Warn("Input file disappeared", zap.String("file", event.Name))
				continue
			}

			start := time.Now()
			if err := update(); err != nil {
				logger.Error("Update failed", zap.String("file", event.Name), zap.Error(err))
				continue
			}
			logger.Debug("Updated", zap.String("file", event.Name), zap.Duration("took", time.Since(start)))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching: %v", err)
		case <-ctx.Done():
			logger.Info("Stopped watching")
			return nil
		}
	}
}
