package progress

import (
	"strings"
	"testing"
)

func TestProgressBar_New(t *testing.T) {
	pb := NewProgressBar(100, "Test message")
	if pb.Total() != 100 {
		t.Errorf("expected total 100, got %d", pb.Total())
	}
}

func TestProgressBar_SetProgressBeforeStart(t *testing.T) {
	pb := NewProgressBar(10, "Test")
	// Should not panic when setting progress before Start()
	pb.SetProgress(5, "Updated")
	if pb.Current() != 5 {
		t.Errorf("expected current 5, got %d", pb.Current())
	}
}

func TestProgressBar_StopBeforeStart(t *testing.T) {
	pb := NewProgressBar(10, "Test")
	// Stop without Start should not panic
	pb.Stop()
}

func TestPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current, total int
		want           float64
	}{
		{0, 0, 0},
		{0, 10, 0},
		{5, 10, 0.5},
		{10, 10, 1},
		{12, 10, 1},
		{-1, 10, 0},
	}

	for _, tt := range tests {
		if got := percent(tt.current, tt.total); got != tt.want {
			t.Errorf("percent(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
		}
	}
}

func TestRenderLine(t *testing.T) {
	t.Parallel()

	got := renderLine("[bar]", 3118, 6236, "Saved 18:12")
	want := "[bar]  50% 3118/6236 Saved 18:12"
	if got != want {
		t.Errorf("renderLine = %q, want %q", got, want)
	}
	if !strings.HasPrefix(renderLine("[bar]", 0, 7, "x"), "[bar]   0%") {
		t.Error("zero progress should render 0%")
	}
}
