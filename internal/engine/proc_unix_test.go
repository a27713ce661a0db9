//go:build unix

package engine_test

import (
	"context"
	"errors"
	"os"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/fractalcmp/internal/engine"
)

// TestHelperProcess is re-executed as the interpreter by helperEngine. It
// touches FRACTALCMP_HELPER_ALLOC_MB mebibytes and exits.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("FRACTALCMP_HELPER_PROCESS") != "1" {
		return
	}
	mb, _ := strconv.Atoi(os.Getenv("FRACTALCMP_HELPER_ALLOC_MB"))
	buf := make([]byte, mb<<20)
	for i := 0; i < len(buf); i += 4096 {
		buf[i] = 1
	}
	runtime.KeepAlive(buf)
	os.Stdout.WriteString("*\n")
	os.Exit(0)
}

func helperEngine(allocMB int) *engine.SubprocessEngine {
	return engine.NewSubprocessEngine(engine.SubprocessConfig{
		Command: os.Args[0],
		Args:    []string{"-test.run=^TestHelperProcess$", "--"},
		Env: append(os.Environ(),
			"FRACTALCMP_HELPER_PROCESS=1",
			"FRACTALCMP_HELPER_ALLOC_MB="+strconv.Itoa(allocMB)),
	}, zerolog.Nop())
}

func TestSubprocessEngine_MaxRSSIsPerProcess(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("peak RSS units verified on linux and darwin only")
	}
	const bigMB = 128

	big, err := helperEngine(bigMB).Execute(context.Background(), engine.Program("+"), nil)
	if err != nil || !big.Succeeded() {
		t.Fatalf("big run: resp=%+v err=%v", big, err)
	}
	small, err := helperEngine(0).Execute(context.Background(), engine.Program("+"), nil)
	if err != nil || !small.Succeeded() {
		t.Fatalf("small run: resp=%+v err=%v", small, err)
	}

	if big.Usage.MaxRSSBytes < bigMB<<20 {
		t.Errorf("big run MaxRSSBytes = %d, want at least %d", big.Usage.MaxRSSBytes, bigMB<<20)
	}
	if small.Usage.MaxRSSBytes <= 0 || small.Usage.MaxRSSBytes >= big.Usage.MaxRSSBytes/2 {
		t.Errorf("small run MaxRSSBytes = %d carried over from the big run (%d)",
			small.Usage.MaxRSSBytes, big.Usage.MaxRSSBytes)
	}
}

func TestSubprocessEngine_CancelKillsProcessGroup(t *testing.T) {
	t.Parallel()
	// The background sleep shares the group and is killed with the shell.
	e := shellEngine(t, `sleep 30 & wait`, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := e.Execute(ctx, engine.Program("+"), nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Execute returned after %v, want prompt return", elapsed)
	}
}
