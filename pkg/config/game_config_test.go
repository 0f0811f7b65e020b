package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	if cfg.Arrow.StuckLifetime != 3.0 {
		t.Errorf("expected stuck lifetime 3.0, got %f", cfg.Arrow.StuckLifetime)
	}
	if cfg.Arrow.EnemyHitStuckTimer != 2.9 {
		t.Errorf("expected enemy hit stuck timer 2.9, got %f", cfg.Arrow.EnemyHitStuckTimer)
	}
	if cfg.Player.ArrowSpeed != 400 {
		t.Errorf("expected arrow speed 400, got %f", cfg.Player.ArrowSpeed)
	}
}

func TestEnemyDurations(t *testing.T) {
	e := DefaultGameConfig().Enemy

	if got, want := e.HitDuration(), 4*0.15; got != want {
		t.Errorf("HitDuration() = %f, want %f", got, want)
	}
	if got, want := e.DieDuration(), 16*0.08; got != want {
		t.Errorf("DieDuration() = %f, want %f", got, want)
	}
}

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
player:
  speed: 200
camera:
  smoothing: 8
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Player.Speed != 200 {
					t.Errorf("expected player speed 200, got %f", cfg.Player.Speed)
				}
				if cfg.Camera.Smoothing != 8 {
					t.Errorf("expected smoothing 8, got %f", cfg.Camera.Smoothing)
				}
				// 未覆盖的字段保持默认
				if cfg.Player.JumpPower != 450 {
					t.Errorf("expected default jump power 450, got %f", cfg.Player.JumpPower)
				}
				if cfg.Screen.Width != 800 {
					t.Errorf("expected default screen width 800, got %d", cfg.Screen.Width)
				}
			},
		},
		{
			name: "negative speed",
			yamlContent: `
player:
  speed: -1
`,
			wantErr:     true,
			errContains: "player.speed must be positive",
		},
		{
			name: "enemy hit timer beyond lifetime",
			yamlContent: `
arrow:
  stuckLifetime: 1.0
  enemyHitStuckTimer: 2.0
`,
			wantErr:     true,
			errContains: "enemyHitStuckTimer",
		},
		{
			name: "zero screen",
			yamlContent: `
screen:
  width: 0
`,
			wantErr:     true,
			errContains: "screen size must be positive",
		},
		{
			name:        "malformed yaml",
			yamlContent: "player: [",
			wantErr:     true,
			errContains: "failed to parse game config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("enemy:\n  lives: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig() error: %v", err)
	}
	if cfg.Enemy.Lives != 2 {
		t.Errorf("expected enemy lives 2, got %d", cfg.Enemy.Lives)
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBundledConfigMatchesDefaults(t *testing.T) {
	path := filepath.Join("..", "..", "data", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("config.yaml not found: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig() error: %v", err)
	}

	def := DefaultGameConfig()
	if *cfg != *def {
		t.Errorf("bundled config differs from defaults:\n got:  %+v\n want: %+v", *cfg, *def)
	}
}
