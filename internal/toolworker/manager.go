package toolworker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"pptmcp/server/internal/logging"
)

const (
	defaultMaxRestarts = 3
	defaultBackoff     = time.Second
	workerScript       = "pptworker.py"
)

// Client is the document engine boundary: one JSON-RPC call per engine
// capability.
type Client interface {
	Call(ctx context.Context, method string, params any, result any) error
	HealthCheck(ctx context.Context) error
	Close() error
}

// Manager runs the worker subprocess on demand and restarts it after a crash.
// Consecutive start failures or crashes back off exponentially; after
// maxRestarts of them the manager stays unavailable until Reset.
type Manager struct {
	path        string
	env         []string
	maxRestarts int
	backoff     time.Duration
	logger      *slog.Logger

	nextID atomic.Int64

	mu       sync.Mutex
	cond     *sync.Cond
	proc     *process
	starting bool
	failures int
	starts   int
	disabled bool
	closed   bool
}

type Option func(*Manager)

// WithEnv appends entries to the worker's environment.
func WithEnv(env ...string) Option {
	return func(m *Manager) { m.env = append(m.env, env...) }
}

func WithMaxRestarts(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxRestarts = n
		}
	}
}

// WithBackoff sets the delay before the first restart; it doubles with each
// further consecutive failure.
func WithBackoff(d time.Duration) Option {
	return func(m *Manager) {
		if d >= 0 {
			m.backoff = d
		}
	}
}

// New returns a manager for the worker executable at workerPath. An empty
// path falls back to PPTMCP_WORKER_PATH and then to pptworker.py next to the
// working directory or the binary.
func New(workerPath string, logger *slog.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = logging.Nop()
	}
	m := &Manager{
		path:        strings.TrimSpace(workerPath),
		maxRestarts: defaultMaxRestarts,
		backoff:     defaultBackoff,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Start launches the worker now instead of on the first call.
func (m *Manager) Start() error {
	_, err := m.running(context.Background())
	return err
}

func (m *Manager) Call(ctx context.Context, method string, params any, result any) error {
	proc, err := m.running(ctx)
	if err != nil {
		return err
	}
	raw, err := proc.call(ctx, m.nextID.Add(1), method, params)
	if err != nil {
		return err
	}
	if result == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

func (m *Manager) HealthCheck(ctx context.Context) error {
	var info WorkerInfo
	if err := m.Call(ctx, MethodWorkerGetInfo, struct{}{}, &info); err != nil {
		return fmt.Errorf("tool worker health check failed: %w", err)
	}
	if !info.OK {
		return errors.New("tool worker health check returned not ok")
	}
	m.logger.Debug("toolworker.health_check_ok", "worker", info.Worker)
	return nil
}

func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	proc := m.proc
	m.mu.Unlock()
	if proc != nil {
		_ = proc.stdin.Close()
		proc.kill()
		<-proc.done
	}
	return nil
}

// Reset clears the failure count so a disabled worker may start again.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disabled = false
	m.failures = 0
	m.logger.Info("toolworker.reset")
}

// IsHealthy reports whether a worker process is running and calls are
// accepted.
func (m *Manager) IsHealthy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.proc != nil && !m.disabled && !m.closed
}

type Status struct {
	Running  bool `json:"running"`
	PID      int  `json:"pid,omitempty"`
	Disabled bool `json:"disabled"`
	Closed   bool `json:"closed"`
	Failures int  `json:"failures"`
	Starts   int  `json:"starts"`
}

func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	status := Status{
		Running:  m.proc != nil,
		Disabled: m.disabled,
		Closed:   m.closed,
		Failures: m.failures,
		Starts:   m.starts,
	}
	if m.proc != nil {
		status.PID = m.proc.pid()
	}
	return status
}

// running returns the live process, starting one when there is none. Only
// one caller starts a process at a time; the others wait for its outcome.
func (m *Manager) running(ctx context.Context) (*process, error) {
	m.mu.Lock()
	for m.starting {
		m.cond.Wait()
	}
	if m.proc != nil && m.proc.finished() {
		m.dropLocked(m.proc)
	}
	switch {
	case m.closed, m.disabled:
		m.mu.Unlock()
		return nil, ErrUnavailable
	case m.proc != nil:
		proc := m.proc
		m.mu.Unlock()
		return proc, nil
	}
	m.starting = true
	failures := m.failures
	m.mu.Unlock()

	var proc *process
	err := m.wait(ctx, failures)
	if err == nil {
		proc, err = m.launch()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.starting = false
	m.cond.Broadcast()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	if err != nil {
		m.recordFailureLocked()
		m.logger.Warn("toolworker.start_failed", "error", err.Error(), "failures", m.failures)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if m.closed {
		proc.kill()
		return nil, ErrUnavailable
	}
	if proc.finished() {
		m.recordFailureLocked()
		m.logger.Warn("toolworker.exited_on_start", "failures", m.failures)
		return nil, ErrUnavailable
	}
	m.proc = proc
	m.failures = 0
	m.starts++
	return proc, nil
}

func (m *Manager) wait(ctx context.Context, failures int) error {
	if failures == 0 || m.backoff == 0 {
		return ctx.Err()
	}
	delay := m.backoff << (failures - 1)
	m.logger.Debug("toolworker.restart_backoff", "delay", delay.String(), "failures", failures)
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) launch() (*process, error) {
	command, args, err := workerCommand(m.path)
	if err != nil {
		return nil, err
	}
	env := append(os.Environ(), "PYTHONUNBUFFERED=1")
	env = append(env, m.env...)
	proc, err := startProcess(command, args, env, m.logger, m.exited)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("toolworker.started", "cmd", command, "pid", proc.pid())
	return proc, nil
}

func (m *Manager) exited(proc *process, err error) {
	m.mu.Lock()
	dropped := m.dropLocked(proc)
	closed := m.closed
	m.mu.Unlock()
	if !dropped || closed {
		return
	}
	attrs := []any{"pid", proc.pid()}
	if err != nil {
		attrs = append(attrs, "error", err.Error())
	}
	m.logger.Warn("toolworker.exited", attrs...)
}

// dropLocked forgets proc if it is the current process and counts its exit
// as a failure. It reports whether proc was current.
func (m *Manager) dropLocked(proc *process) bool {
	if m.proc != proc {
		return false
	}
	m.proc = nil
	if !m.closed {
		m.recordFailureLocked()
	}
	return true
}

func (m *Manager) recordFailureLocked() {
	m.failures++
	if m.failures >= m.maxRestarts {
		m.disabled = true
	}
}

// workerCommand resolves the executable and arguments for the worker.
// Python scripts run under python3 (or python) in unbuffered mode.
func workerCommand(configured string) (string, []string, error) {
	path, err := locateWorker(configured)
	if err != nil {
		return "", nil, err
	}
	if !strings.EqualFold(filepath.Ext(path), ".py") {
		return path, nil, nil
	}
	for _, name := range []string{"python3", "python"} {
		if python, err := exec.LookPath(name); err == nil {
			return python, []string{"-u", path}, nil
		}
	}
	return "", nil, errors.New("python not found in PATH")
}

func locateWorker(configured string) (string, error) {
	path := configured
	if path == "" {
		path = strings.TrimSpace(os.Getenv("PPTMCP_WORKER_PATH"))
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", err
		}
		return path, nil
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, "worker", workerScript))
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(dir, "worker", workerScript),
			filepath.Join(dir, "..", "share", "pptmcp", workerScript),
		)
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return filepath.Clean(candidate), nil
		}
	}
	return "", errors.New("tool worker not found; set worker.path or PPTMCP_WORKER_PATH")
}
