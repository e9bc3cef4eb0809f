package scenario

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before a burst of writes is reported.
const DefaultDebounce = 100 * time.Millisecond

// EventType represents the type of scenario file event.
type EventType int

const (
	// Changed indicates the file was created, written or replaced.
	Changed EventType = iota
	// Removed indicates the file no longer exists.
	Removed
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case Changed:
		return "changed"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Event reports a settled change to the watched file.
type Event struct {
	Type EventType
	Path string
}

// Watcher monitors one scenario file for changes.
//
// The parent directory is watched rather than the file itself so that
// editors which save by rename are still seen.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	events  chan Event
	errors  chan error

	debounceDelay time.Duration
	timer         *time.Timer
	timerMu       sync.Mutex

	stopCh    chan struct{}
	stoppedCh chan struct{}
	running   bool
	closed    bool
	runningMu sync.Mutex
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce delay.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounceDelay = d
		}
	}
}

// NewWatcher creates a new watcher for the scenario file at path.
func NewWatcher(path string, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		path:          filepath.Clean(path),
		events:        make(chan Event, 16),
		errors:        make(chan error, 1),
		debounceDelay: DefaultDebounce,
		stopCh:        make(chan struct{}),
		stoppedCh:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching. Calling Start on a running watcher is a no-op.
func (w *Watcher) Start() error {
	w.runningMu.Lock()
	defer w.runningMu.Unlock()

	if w.running || w.closed {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return err
	}
	w.watcher = watcher

	w.running = true
	go w.watchLoop()

	return nil
}

// Stop terminates the watcher and closes the events channel.
func (w *Watcher) Stop() {
	w.runningMu.Lock()
	if w.closed {
		w.runningMu.Unlock()
		return
	}
	wasRunning := w.running
	w.running = false
	w.runningMu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.stoppedCh
		w.watcher.Close()
	}

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.timerMu.Unlock()

	w.runningMu.Lock()
	w.closed = true
	close(w.events)
	w.runningMu.Unlock()
}

// Events returns the channel of settled file events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of watch errors. Errors are dropped when the
// channel is full.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

func (w *Watcher) watchLoop() {
	defer close(w.stoppedCh)

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			w.debounce()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func (w *Watcher) debounce() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounceDelay, w.settle)
}

// settle reports the file's state once writes have gone quiet.
func (w *Watcher) settle() {
	typ := Changed
	if _, err := os.Stat(w.path); os.IsNotExist(err) {
		typ = Removed
	}

	w.runningMu.Lock()
	defer w.runningMu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.events <- Event{Type: typ, Path: w.path}:
	default:
		// Channel full, a reload is already pending.
	}
}
