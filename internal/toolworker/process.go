package toolworker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
)

const (
	jsonRPCVersion = "2.0"
	maxReplySize   = 12 * 1024 * 1024
)

type wireRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type wireReply struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *wireError      `json:"error,omitempty"`
}

// process is one running worker. Once it exits every pending call fails
// with ErrUnavailable and the process is never reused.
type process struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	logger *slog.Logger

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[int64]chan wireReply
	exited  bool
	done    chan struct{}
}

// startProcess launches command and calls onExit once the process is gone
// and its output has been drained.
func startProcess(command string, args, env []string, logger *slog.Logger, onExit func(*process, error)) (*process, error) {
	cmd := exec.Command(command, args...)
	cmd.Env = env
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	p := &process{
		cmd:     cmd,
		stdin:   stdin,
		logger:  logger,
		pending: make(map[int64]chan wireReply),
		done:    make(chan struct{}),
	}
	var readers sync.WaitGroup
	readers.Add(2)
	go func() {
		defer readers.Done()
		p.readReplies(stdout)
	}()
	go func() {
		defer readers.Done()
		p.forwardStderr(stderr)
	}()
	go func() {
		readers.Wait()
		err := cmd.Wait()
		p.shutdown()
		onExit(p, err)
	}()
	return p, nil
}

func (p *process) pid() int {
	if p.cmd.Process == nil {
		return 0
	}
	return p.cmd.Process.Pid
}

func (p *process) call(ctx context.Context, id int64, method string, params any) (json.RawMessage, error) {
	replyCh := make(chan wireReply, 1)
	p.mu.Lock()
	if p.exited {
		p.mu.Unlock()
		return nil, ErrUnavailable
	}
	p.pending[id] = replyCh
	p.mu.Unlock()

	payload, err := json.Marshal(wireRequest{JSONRPC: jsonRPCVersion, ID: id, Method: method, Params: params})
	if err != nil {
		p.forget(id)
		return nil, fmt.Errorf("encode %s params: %w", method, err)
	}
	p.writeMu.Lock()
	_, err = p.stdin.Write(append(payload, '\n'))
	p.writeMu.Unlock()
	if err != nil {
		p.forget(id)
		p.logger.Warn("toolworker.write_failed", "method", method, "error", err.Error())
		p.kill()
		return nil, ErrUnavailable
	}

	select {
	case reply := <-replyCh:
		if reply.Error != nil {
			return nil, reply.Error.err()
		}
		return reply.Result, nil
	case <-ctx.Done():
		p.forget(id)
		return nil, ctx.Err()
	}
}

// finished reports whether the process has exited. It turns true before
// pending calls are failed.
func (p *process) finished() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exited
}

func (p *process) forget(id int64) {
	p.mu.Lock()
	delete(p.pending, id)
	p.mu.Unlock()
}

func (p *process) kill() {
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
}

// shutdown fails every call still waiting for a reply.
func (p *process) shutdown() {
	p.mu.Lock()
	if p.exited {
		p.mu.Unlock()
		return
	}
	p.exited = true
	pending := p.pending
	p.pending = nil
	p.mu.Unlock()

	unavailable := &wireError{Message: CodeToolWorkerUnavailable}
	for _, ch := range pending {
		ch <- wireReply{Error: unavailable}
	}
	close(p.done)
}

func (p *process) readReplies(stdout io.Reader) {
	reader := bufio.NewReaderSize(stdout, 64*1024)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > maxReplySize {
			p.logger.Warn("toolworker.reply_too_large", "bytes", len(line))
			p.kill()
			_, _ = io.Copy(io.Discard, reader)
			return
		}
		if trimmed := strings.TrimSpace(string(line)); trimmed != "" {
			p.deliver([]byte(trimmed))
		}
		if err != nil {
			return
		}
	}
}

func (p *process) deliver(line []byte) {
	var reply wireReply
	if err := json.Unmarshal(line, &reply); err != nil {
		p.logger.Warn("toolworker.invalid_json", "error", err.Error())
		return
	}
	if reply.ID == 0 {
		return
	}
	p.mu.Lock()
	ch := p.pending[reply.ID]
	delete(p.pending, reply.ID)
	p.mu.Unlock()
	if ch != nil {
		ch <- reply
	}
}

// forwardStderr relays worker diagnostics. Lines that are JSON objects with
// level and message keys keep their level; anything else is a warning.
func (p *process) forwardStderr(stderr io.Reader) {
	scanner := bufio.NewScanner(stderr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		level, message, attrs, ok := parseWorkerLog(line)
		if !ok {
			p.logger.Warn("toolworker.stderr", "message", line)
			continue
		}
		p.logger.Log(context.Background(), level, message, attrs...)
	}
	if err := scanner.Err(); err != nil {
		_, _ = io.Copy(io.Discard, stderr)
	}
}

func parseWorkerLog(line string) (slog.Level, string, []any, bool) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		return 0, "", nil, false
	}
	rawLevel, _ := payload["level"].(string)
	message, _ := payload["message"].(string)
	if rawLevel == "" || message == "" {
		return 0, "", nil, false
	}
	level := slog.LevelWarn
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error", "critical":
		level = slog.LevelError
	}
	attrs := make([]any, 0, 2*len(payload))
	for key, value := range payload {
		if key != "level" && key != "message" {
			attrs = append(attrs, key, value)
		}
	}
	return level, message, attrs, true
}
