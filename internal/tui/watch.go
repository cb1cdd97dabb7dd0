package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 150 * time.Millisecond

// dirChangedMsg is sent after a burst of file events in the watched
// directory settles.
type dirChangedMsg struct{}

// watchErrMsg is sent when the watcher reports an error.
type watchErrMsg struct {
	err error
}

// dirWatcher turns fsnotify events for one directory into tea messages.
type dirWatcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
}

func newDirWatcher(dir string) (*dirWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}
	return &dirWatcher{fs: w, debounce: watchDebounce}, nil
}

// next waits for the next change and returns it as a message. Events that
// arrive within the debounce window are coalesced.
func (w *dirWatcher) next() tea.Cmd {
	return func() tea.Msg {
		select {
		case _, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}

		timer := time.NewTimer(w.debounce)
		defer timer.Stop()

		for {
			select {
			case _, ok := <-w.fs.Events:
				if !ok {
					return dirChangedMsg{}
				}
				timer.Reset(w.debounce)
			case <-timer.C:
				return dirChangedMsg{}
			}
		}
	}
}

func (w *dirWatcher) close() error {
	return w.fs.Close()
}
