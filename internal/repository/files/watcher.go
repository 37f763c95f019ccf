package files

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after a change before content is reloaded.
const DefaultDebounce = 500 * time.Millisecond

// Watch reloads the content whenever a file under Dir changes, after debounce
// of quiet. onReload, if set, receives the result of every reload. Watch blocks
// until ctx is done.
func (r *ContentRepository) Watch(ctx context.Context, debounce time.Duration, onReload func(error)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := r.addWatches(watcher, r.Dir); err != nil {
		return err
	}

	var (
		mu        sync.Mutex
		reloadTmr *time.Timer
	)
	defer func() {
		mu.Lock()
		if reloadTmr != nil {
			reloadTmr.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			r.logger.DebugContext(ctx, "content change detected", "path", event.Name, "op", event.Op.String())
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := r.addWatches(watcher, event.Name); err != nil {
					r.logger.WarnContext(ctx, "watch new directory failed", "path", event.Name, "err", err)
				}
			}

			mu.Lock()
			if reloadTmr != nil {
				reloadTmr.Stop()
			}
			// A callback may still be running; Load serializes the two.
			reloadTmr = time.AfterFunc(debounce, func() {
				if ctx.Err() != nil {
					return
				}
				err := r.Load(ctx)
				if err != nil {
					r.logger.ErrorContext(ctx, "content reload failed", "err", err)
				}
				if onReload != nil {
					onReload(err)
				}
			})
			mu.Unlock()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.WarnContext(ctx, "watcher error", "err", err)
		}
	}
}

// addWatches adds root and every directory below it; fsnotify is not recursive.
func (r *ContentRepository) addWatches(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
