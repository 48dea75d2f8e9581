// Package watch provides file system watching for the contact store
// file, so a session can observe edits made by another process or a
// text editor.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// EventOp represents the type of file system operation.
type EventOp int

const (
	// OpCreate indicates the store file was created.
	OpCreate EventOp = iota
	// OpModify indicates the store file was rewritten.
	OpModify
	// OpDelete indicates the store file was deleted.
	OpDelete
)

// String returns a human-readable representation of the operation.
func (op EventOp) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpModify:
		return "modify"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Event represents a change to the watched store file.
type Event struct {
	// Path is the path of the store file that changed.
	Path string
	// Op is the operation that occurred.
	Op EventOp
}

// FileWatcher watches a single store file for changes. It watches the
// parent directory rather than the file itself: the store replaces the
// file by rename on every save, which would silently drop a watch on
// the file's inode.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	events    chan Event
	errors    chan error
	done      chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
	running   bool
	storePath string
}

// NewFileWatcher creates a new FileWatcher instance.
// The watcher must be started with Start() before it will emit events.
func NewFileWatcher() (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &FileWatcher{
		watcher: watcher,
		events:  make(chan Event, 100),
		errors:  make(chan error, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching the directory containing storePath for changes
// to the store file. The directory must exist.
func (fw *FileWatcher) Start(storePath string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.running {
		return fmt.Errorf("watcher already running")
	}

	abs, err := filepath.Abs(storePath)
	if err != nil {
		return fmt.Errorf("failed to resolve store path %s: %w", storePath, err)
	}
	fw.storePath = abs

	if err := fw.watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", filepath.Dir(abs), err)
	}

	fw.running = true
	fw.wg.Add(1)
	go fw.processEvents()

	return nil
}

// Stop stops watching for file system events and cleans up resources.
// It blocks until the event processing goroutine has exited.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	if !fw.running {
		fw.mu.Unlock()
		return nil
	}
	fw.running = false
	fw.mu.Unlock()

	close(fw.done)

	if err := fw.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}

	fw.wg.Wait()

	close(fw.events)
	close(fw.errors)

	return nil
}

// Events returns the channel that emits change notifications.
// This channel is closed when the watcher is stopped.
func (fw *FileWatcher) Events() <-chan Event {
	return fw.events
}

// Errors returns the channel that emits error notifications.
// This channel is closed when the watcher is stopped.
func (fw *FileWatcher) Errors() <-chan error {
	return fw.errors
}

// IsRunning returns true if the watcher is currently running.
func (fw *FileWatcher) IsRunning() bool {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return fw.running
}

// processEvents is the main event loop that converts fsnotify events
// into store file change notifications.
func (fw *FileWatcher) processEvents() {
	defer fw.wg.Done()

	for {
		select {
		case <-fw.done:
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			if fileEvent, ok := fw.convertEvent(event); ok {
				select {
				case fw.events <- fileEvent:
				case <-fw.done:
					return
				}
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}

			select {
			case fw.errors <- err:
			case <-fw.done:
				return
			}
		}
	}
}

// convertEvent converts an fsnotify event to an Event. Returns
// (Event{}, false) for events on other files in the directory and for
// ignored operations such as chmod.
func (fw *FileWatcher) convertEvent(event fsnotify.Event) (Event, bool) {
	abs, err := filepath.Abs(event.Name)
	if err != nil || abs != fw.storePath {
		return Event{}, false
	}

	var op EventOp
	switch {
	case event.Has(fsnotify.Create):
		// A save replaces the file by rename, which arrives as a
		// create for the store path.
		op = OpCreate
	case event.Has(fsnotify.Write):
		op = OpModify
	case event.Has(fsnotify.Remove):
		op = OpDelete
	case event.Has(fsnotify.Rename):
		op = OpDelete
	default:
		return Event{}, false
	}

	return Event{Path: fw.storePath, Op: op}, true
}
