package level

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/fluffy/pkg/config"
)

func newPreviewLevel() *config.LevelConfig {
	cfg := newTestLevel()
	cfg.Player = config.SpawnPoint{X: 12, Y: 2}
	cfg.Enemies = []config.SpawnPoint{
		{X: 25, Y: 12},
		{X: -5, Y: 0},
	}
	return cfg
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats(newPreviewLevel(), 30)

	if s.Cols != 3 || s.Rows != 3 {
		t.Fatalf("expected 3x3, got %dx%d", s.Cols, s.Rows)
	}
	if s.SolidTiles != 5 || s.EmptyTiles != 4 {
		t.Errorf("expected 5 solid / 4 empty, got %d / %d", s.SolidTiles, s.EmptyTiles)
	}
	if s.PlayerCell != [2]int{1, 0} {
		t.Errorf("expected player cell (1, 0), got %v", s.PlayerCell)
	}
	if s.EnemyCount != 2 {
		t.Errorf("expected 2 enemies, got %d", s.EnemyCount)
	}
	if s.OutOfBounds != 1 {
		t.Errorf("expected 1 spawn outside the grid, got %d", s.OutOfBounds)
	}
}

func TestRenderGrid(t *testing.T) {
	out := RenderGrid(newPreviewLevel(), 30)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 3 {
			t.Errorf("line %d: expected width 3, got %d", i, w)
		}
	}

	tests := []struct {
		glyph string
		want  int
	}{
		{glyphSolid, 5},
		{glyphEmpty, 2},
		{glyphPlayer, 1},
		{glyphEnemy, 1},
	}
	for _, tt := range tests {
		if got := strings.Count(out, tt.glyph); got != tt.want {
			t.Errorf("glyph %q: expected %d, got %d", tt.glyph, tt.want, got)
		}
	}
}

func TestRenderStatsWarnsOutOfBounds(t *testing.T) {
	out := RenderStats(ComputeStats(newPreviewLevel(), 30))
	if !strings.Contains(out, "outside the grid") {
		t.Errorf("expected out-of-bounds warning, got:\n%s", out)
	}

	clean := newTestLevel()
	clean.Player = config.SpawnPoint{X: 12, Y: 2}
	if out := RenderStats(ComputeStats(clean, 30)); strings.Contains(out, "outside the grid") {
		t.Errorf("unexpected warning for in-grid spawns:\n%s", out)
	}
}

func TestPreviewIncludesName(t *testing.T) {
	out := Preview(newPreviewLevel(), 30)
	if !strings.Contains(out, "test") {
		t.Errorf("expected level name in preview, got:\n%s", out)
	}
}
