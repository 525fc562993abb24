package tail

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	fsnotify "github.com/fsnotify/fsnotify"
)

// pollInterval is a fallback for filesystems that coalesce or drop events.
const pollInterval = 500 * time.Millisecond

// Follower reads lines appended to a file after it was opened.
type Follower struct {
	path    string
	watcher *fsnotify.Watcher
	offset  int64
	pending []byte
}

// Open starts watching path. Content already in the file is skipped.
func Open(path string) (*Follower, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	st, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory so rename-and-recreate by editors is seen too
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}
	return &Follower{path: abs, watcher: w, offset: st.Size()}, nil
}

// Run calls fn for each complete line until ctx is done or the watcher
// fails. The watcher is closed on return.
func (f *Follower) Run(ctx context.Context, fn func(line string)) error {
	defer f.watcher.Close()
	tick := time.NewTicker(pollInterval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-f.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != f.path {
				continue
			}
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				f.offset = 0
				f.pending = f.pending[:0]
				continue
			}
			if err := f.drain(fn); err != nil {
				return err
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return nil
			}
			return err
		case <-tick.C:
			if err := f.drain(fn); err != nil {
				return err
			}
		}
	}
}

// drain reads everything past the current offset and emits whole lines.
func (f *Follower) drain(fn func(string)) error {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	st, err := file.Stat()
	if err != nil {
		return err
	}
	if st.Size() < f.offset {
		// truncated
		f.offset = 0
		f.pending = f.pending[:0]
	}
	if st.Size() == f.offset {
		return nil
	}
	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return err
	}
	b, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	f.offset += int64(len(b))
	f.pending = append(f.pending, b...)
	for {
		i := bytes.IndexByte(f.pending, '\n')
		if i < 0 {
			break
		}
		line := bytes.TrimRight(f.pending[:i], "\r")
		fn(string(line))
		f.pending = f.pending[i+1:]
	}
	return nil
}

// Follow opens path and runs until ctx is done.
func Follow(ctx context.Context, path string, fn func(line string)) error {
	f, err := Open(path)
	if err != nil {
		return err
	}
	return f.Run(ctx, fn)
}
