package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind tells the game what a changed file affects.
type ChangeKind int

const (
	// ChangeSettings is collision.yaml: tuning that can be applied to the
	// running pipeline.
	ChangeSettings ChangeKind = iota
	// ChangeEntity is an entity prefab, picked up by the next spawn or reset.
	ChangeEntity
)

type Change struct {
	Name string
	Kind ChangeKind
}

const debounce = 100 * time.Millisecond

// Watcher reports prefab files changed on disk. Editors often write a file
// several times in a row, so repeats within the debounce window are dropped.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan Change
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		fs:      fw,
		changes: make(chan Change, 16),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Changes() <-chan Change { return w.changes }

func (w *Watcher) Errors() <-chan error { return w.errs }

// Pending drains every change queued so far without blocking. The second
// result is false once the watcher has stopped.
func (w *Watcher) Pending() ([]Change, bool) {
	var out []Change
	for {
		select {
		case c, ok := <-w.changes:
			if !ok {
				return out, false
			}
			out = append(out, c)
		default:
			return out, true
		}
	}
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.changes)
	defer close(w.errs)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			change, ok := classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := last[change.Name]; seen && now.Sub(t) < debounce {
				continue
			}
			last[change.Name] = now
			select {
			case w.changes <- change:
			case <-w.done:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

func classify(path string) (Change, bool) {
	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
	default:
		return Change{}, false
	}
	if name == SettingsFile {
		return Change{Name: name, Kind: ChangeSettings}, true
	}
	return Change{Name: name, Kind: ChangeEntity}, true
}
