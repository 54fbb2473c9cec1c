package tui

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 200 * time.Millisecond

// Watch watches root (recursively) for changes to .md files and invokes
// notify, debounced, after each burst of changes. The returned cleanup
// function stops the watcher.
func Watch(root string, notify func()) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})

	go func() {
		var debounceTimer *time.Timer

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				// New directories need to be watched too.
				if event.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() &&
						!strings.HasPrefix(filepath.Base(event.Name), ".") {
						watcher.Add(event.Name)
					}
				}

				if !strings.HasSuffix(event.Name, ".md") {
					continue
				}

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(watchDebounce, notify)

			case <-watcher.Errors:
				// Ignore watcher errors.

			case <-done:
				return
			}
		}
	}()

	cleanup := func() {
		close(done)
		watcher.Close()
	}

	return cleanup, nil
}

// StartWatcher wires Watch into a running bubbletea program, sending
// FileChangedMsg on each change.
func StartWatcher(root string, program *tea.Program) (func(), error) {
	return Watch(root, func() {
		program.Send(FileChangedMsg{})
	})
}
