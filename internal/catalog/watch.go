package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/jask/photogrid/internal/photo"
)

const reloadDelay = 150 * time.Millisecond

// Reload is delivered after the manifest changes on disk. Err is set when the
// new content could not be loaded; Photos is nil in that case.
type Reload struct {
	Photos []photo.Photo
	Err    error
}

// Watch reloads the manifest at path whenever it changes and passes the
// result to notify. It blocks until ctx is cancelled. The parent directory is
// watched so editors that replace the file on save are still seen. Bursts of
// events are coalesced into one reload.
func Watch(ctx context.Context, path string, log zerolog.Logger, notify func(Reload)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve manifest path: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	log.Debug().Str("path", abs).Msg("watching manifest")

	timer := time.NewTimer(reloadDelay)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(reloadDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("manifest watcher error")
		case <-timer.C:
			list, err := Load(abs)
			if err != nil {
				log.Warn().Err(err).Msg("manifest reload failed")
				notify(Reload{Err: err})
				continue
			}
			log.Info().Int("photos", len(list)).Msg("manifest reloaded")
			notify(Reload{Photos: list})
		}
	}
}
