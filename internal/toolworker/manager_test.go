package toolworker

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

func TestManagerRestartOnCrash(t *testing.T) {
	python := requirePython(t)

	root := t.TempDir()
	script := writeWorkerScript(t, root, python, "fake_worker.py", `import sys, json
for line in sys.stdin:
    if not line.strip():
        continue
    req = json.loads(line)
    mid = req.get("method")
    if mid == "Crash":
        sys.exit(0)
    resp = {"jsonrpc":"2.0","id":req.get("id"),"result":{"ok":True,"worker":"script"}}
    sys.stdout.write(json.dumps(resp)+"\n")
    sys.stdout.flush()
`)

	mgr := New(script, nil, WithBackoff(50*time.Millisecond))
	defer mgr.Close()
	if err := mgr.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	firstPID := mgr.Status().PID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var info WorkerInfo
	if err := mgr.Call(ctx, MethodWorkerGetInfo, struct{}{}, &info); err != nil {
		t.Fatalf("call: %v", err)
	}
	if !info.OK || info.Worker != "script" {
		t.Fatalf("unexpected info %+v", info)
	}

	crashCtx, crashCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer crashCancel()
	if err := mgr.Call(crashCtx, "Crash", struct{}{}, &info); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected unavailable after crash, got %v", err)
	}

	retryCtx, retryCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer retryCancel()
	if err := mgr.HealthCheck(retryCtx); err != nil {
		t.Fatalf("expected restart, got %v", err)
	}
	status := mgr.Status()
	if status.Starts != 2 || status.PID == firstPID || status.Failures != 0 {
		t.Fatalf("unexpected status after restart: %+v", status)
	}
}

func TestManagerCallTimeout(t *testing.T) {
	python := requirePython(t)

	root := t.TempDir()
	script := writeWorkerScript(t, root, python, "sleep_worker.py", `import sys, json, time
for line in sys.stdin:
    if not line.strip():
        continue
    time.sleep(5)
    req = json.loads(line)
    resp = {"jsonrpc":"2.0","id":req.get("id"),"result":{"ok":True}}
    sys.stdout.write(json.dumps(resp)+"\n")
    sys.stdout.flush()
`)

	mgr := New(script, nil)
	defer mgr.Close()
	if err := mgr.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	var info WorkerInfo
	err := mgr.Call(ctx, MethodWorkerGetInfo, struct{}{}, &info)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestManagerMapsRemoteErrorCodes(t *testing.T) {
	python := requirePython(t)

	root := t.TempDir()
	script := writeWorkerScript(t, root, python, "error_worker.py", `import sys, json
for line in sys.stdin:
    if not line.strip():
        continue
    req = json.loads(line)
    code = req.get("params", {}).get("code")
    err = {"code":-32000,"message":"slide index 9 out of range","data":{"error_code":code}}
    sys.stdout.write(json.dumps({"jsonrpc":"2.0","id":req.get("id"),"error":err})+"\n")
    sys.stdout.flush()
`)

	mgr := New(script, nil)
	defer mgr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := mgr.Call(ctx, MethodSlideRemove, map[string]any{"code": CodeIndexOutOfRange}, nil)
	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if remote.Code != CodeIndexOutOfRange || remote.Message != "slide index 9 out of range" {
		t.Fatalf("unexpected remote error: %+v", remote)
	}

	err = mgr.Call(ctx, MethodSlideRemove, map[string]any{"code": CodeToolWorkerUnavailable}, nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestManagerMissingWorkerIsUnavailable(t *testing.T) {
	mgr := New(filepath.Join(t.TempDir(), "missing-worker"), nil)
	defer mgr.Close()
	err := mgr.Call(context.Background(), MethodWorkerGetInfo, struct{}{}, nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	status := mgr.Status()
	if status.Running || status.Failures != 1 || status.Disabled {
		t.Fatalf("unexpected status: %+v", status)
	}
	if mgr.IsHealthy() {
		t.Fatalf("expected unhealthy manager")
	}
}

func TestManagerDisablesAfterRepeatedFailures(t *testing.T) {
	mgr := New(filepath.Join(t.TempDir(), "missing-worker"), nil, WithMaxRestarts(2), WithBackoff(0))
	defer mgr.Close()
	for i := 0; i < 3; i++ {
		if err := mgr.Call(context.Background(), MethodWorkerGetInfo, struct{}{}, nil); !errors.Is(err, ErrUnavailable) {
			t.Fatalf("call %d: expected unavailable, got %v", i, err)
		}
	}
	if status := mgr.Status(); !status.Disabled || status.Failures != 2 {
		t.Fatalf("expected disabled after two failures: %+v", status)
	}
	mgr.Reset()
	if status := mgr.Status(); status.Disabled || status.Failures != 0 {
		t.Fatalf("reset should clear failures: %+v", status)
	}
}

func TestManagerClosedIsUnavailable(t *testing.T) {
	mgr := New("", nil)
	if err := mgr.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := mgr.Call(context.Background(), MethodWorkerGetInfo, struct{}{}, nil); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestParseWorkerLog(t *testing.T) {
	level, message, attrs, ok := parseWorkerLog(`{"level":"ERROR","message":"save failed","path":"a.pptx"}`)
	if !ok || level != slog.LevelError || message != "save failed" || len(attrs) != 2 {
		t.Fatalf("unexpected parse %v %q %v %v", level, message, attrs, ok)
	}
	if _, _, _, ok := parseWorkerLog("Traceback (most recent call last):"); ok {
		t.Fatalf("plain lines are not structured logs")
	}
}

func TestWorkerCommand(t *testing.T) {
	binary := filepath.Join(t.TempDir(), "pptworker")
	if err := os.WriteFile(binary, []byte("#!/bin/sh\n"), 0o700); err != nil {
		t.Fatalf("write: %v", err)
	}
	cmd, args, err := workerCommand(binary)
	if err != nil {
		t.Fatalf("command: %v", err)
	}
	if cmd != binary || len(args) != 0 {
		t.Fatalf("unexpected command %s %v", cmd, args)
	}

	t.Setenv("PPTMCP_WORKER_PATH", filepath.Join(t.TempDir(), "missing.py"))
	if _, _, err := workerCommand(""); err == nil {
		t.Fatalf("expected error for missing worker")
	}
}

func writeWorkerScript(t *testing.T, root, python, name, code string) string {
	t.Helper()
	script := filepath.Join(root, name)
	code = "#!/usr/bin/env " + filepath.Base(python) + "\n" + code
	if err := os.WriteFile(script, []byte(code), 0o700); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return script
}

func requirePython(t *testing.T) string {
	t.Helper()
	if path, err := exec.LookPath("python3"); err == nil {
		return path
	}
	if path, err := exec.LookPath("python"); err == nil {
		return path
	}
	t.Skip("python not available")
	return ""
}
