package core

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// WatchTemplates watches the template directory (recursively) and calls
// onChange whenever an .html file is written, created, renamed or
// removed. It returns a stop function.
func WatchTemplates(dir string, logger zerolog.Logger, onChange func()) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	addAll := func() {
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err == nil && d.IsDir() {
				watcher.Add(path)
			}
			return nil
		})
	}
	addAll()

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Create != 0 {
					// A new subdirectory needs its own watch.
					addAll()
				}
				if strings.HasSuffix(event.Name, ".html") {
					logger.Debug().Str("file", event.Name).Msg("template changed")
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn().Err(err).Msg("template watcher error")
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
