package paths

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryInterval = 50 * time.Millisecond

var ErrLockTimeout = errors.New("timed out waiting for document lock")

// Locker serializes load/mutate/save cycles per resolved path. Within the
// process it uses a keyed semaphore; when dir is set it also holds an
// advisory file lock so that other server processes sharing the storage
// root wait as well. A nil *Locker does not lock.
type Locker struct {
	dir     string
	timeout time.Duration

	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	sem  chan struct{}
	refs int
}

func NewLocker(dir string, timeout time.Duration) *Locker {
	return &Locker{dir: dir, timeout: timeout, entries: make(map[string]*lockEntry)}
}

// Lock blocks until path is free, ctx is done or the lock timeout passes.
// The returned function releases the lock.
func (l *Locker) Lock(ctx context.Context, path string) (func(), error) {
	if l == nil {
		return func() {}, nil
	}
	key := filepath.Clean(path)
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	entry := l.acquire(key)
	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		l.release(key, entry, false)
		return nil, lockError(ctx.Err())
	}

	var fileLock *flock.Flock
	if l.dir != "" {
		if err := os.MkdirAll(l.dir, 0o755); err != nil {
			l.release(key, entry, true)
			return nil, fmt.Errorf("create lock dir: %w", err)
		}
		fileLock = flock.New(filepath.Join(l.dir, lockName(key)))
		locked, err := fileLock.TryLockContext(ctx, lockRetryInterval)
		if err != nil || !locked {
			l.release(key, entry, true)
			if err == nil {
				err = ErrLockTimeout
			}
			return nil, lockError(err)
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			if fileLock != nil {
				_ = fileLock.Unlock()
			}
			l.release(key, entry, true)
		})
	}, nil
}

func (l *Locker) acquire(key string) *lockEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &lockEntry{sem: make(chan struct{}, 1)}
		l.entries[key] = entry
	}
	entry.refs++
	return entry
}

func (l *Locker) release(key string, entry *lockEntry, held bool) {
	if held {
		<-entry.sem
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, key)
	}
}

func lockName(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:]) + ".lock"
}

func lockError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrLockTimeout
	}
	return err
}
