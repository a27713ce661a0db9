package metrics

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/fractalcmp/internal/errors"
	"github.com/agbru/fractalcmp/internal/sysmon"
)

func TestOutcomeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want string
	}{
		{nil, OutcomeOK},
		{context.DeadlineExceeded, OutcomeTimeout},
		{fmt.Errorf("run: %w", context.Canceled), OutcomeCanceled},
		{apperrors.ExecutionError{Engine: "bf", Status: 0}, OutcomeExecution},
		{apperrors.DecodeError{Offset: 1, Length: 2}, OutcomeDecode},
		{apperrors.ValidationError{Field: "depth", Message: "x"}, OutcomeInvalid},
		{errors.New("boom"), OutcomeError},
	}
	for _, tt := range tests {
		if got := OutcomeFor(tt.err); got != tt.want {
			t.Errorf("OutcomeFor(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestRecorder_Gather(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveRender("native", 2*time.Millisecond, 2048, nil)
	r.ObserveRender("program", time.Second, 0, apperrors.ExecutionError{Engine: "bf"})
	r.ObserveMismatch()
	r.ObserveHost(sysmon.Load{Before: sysmon.Stats{CPUPercent: 5, MemPercent: 30}, After: sysmon.Stats{CPUPercent: 80, MemPercent: 31}})

	families, err := r.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	got := make(map[string]int)
	for _, mf := range families {
		got[mf.GetName()] = len(mf.GetMetric())
	}
	want := map[string]int{
		"fractalcmp_renders_total":           2,
		"fractalcmp_render_duration_seconds": 2,
		"fractalcmp_render_output_bytes":     1,
		"fractalcmp_mismatches_total":        1,
		"fractalcmp_host_cpu_percent":        2,
		"fractalcmp_host_memory_percent":     2,
	}
	for name, n := range want {
		if got[name] != n {
			t.Errorf("%s: %d series, want %d", name, got[name], n)
		}
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveRender("native", time.Millisecond, 100, nil)

	path := filepath.Join(t.TempDir(), "fractalcmp.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{
		`fractalcmp_renders_total{outcome="ok",renderer="native"} 1`,
		`fractalcmp_render_output_bytes{renderer="native"} 100`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("textfile missing %q:\n%s", want, text)
		}
	}
}

func TestRecorder_NilIsNoop(t *testing.T) {
	t.Parallel()
	var r *Recorder
	r.ObserveRender("native", time.Millisecond, 1, nil)
	r.ObserveMismatch()
	r.ObserveHost(sysmon.Load{})
	if err := r.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")); err != nil {
		t.Errorf("nil WriteTextfile() error = %v", err)
	}
}
