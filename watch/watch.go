// Package watch re-runs prechecks when a project's input files change.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/precheck/errors"
	"github.com/teranos/precheck/logger"
	"github.com/teranos/precheck/project"
)

// Watcher watches a project directory and emits one notification per burst
// of writes to its input files. Other files in the directory, such as the
// DRC report and log, are ignored.
type Watcher struct {
	watcher  *fsnotify.Watcher
	inputs   map[string]bool
	debounce time.Duration
	changes  chan string

	mu      sync.Mutex
	timer   *time.Timer
	pending string
	closed  bool

	wg sync.WaitGroup
}

// New starts watching the directory of p.
func New(p *project.Project, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	// watch the directory so editors that replace files by rename are seen
	if err := fw.Add(p.Dir); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", p.Dir)
	}

	w := &Watcher{
		watcher:  fw,
		inputs:   make(map[string]bool),
		debounce: debounce,
		changes:  make(chan string, 1),
	}
	for _, f := range p.InputFiles() {
		w.inputs[filepath.Clean(f)] = true
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Changes delivers the path of the last input file touched in each burst.
// It is closed by Close.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	log := logger.ComponentLogger("watch")
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if !w.inputs[name] {
				continue
			}
			log.Debugw("input changed", logger.FieldFile, name, "op", event.Op.String())
			w.schedule(name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warnw("watcher error", logger.FieldError, err)
		}
	}
}

// schedule restarts the debounce timer.
func (w *Watcher) schedule(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.pending = name
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.changes <- w.pending:
	default:
		// a run is already queued
	}
}

// Close stops watching and closes Changes.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	close(w.changes)
	return err
}
