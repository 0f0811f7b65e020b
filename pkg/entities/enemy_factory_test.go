package entities

import (
	"testing"

	"github.com/decker502/fluffy/pkg/components"
	"github.com/decker502/fluffy/pkg/config"
	"github.com/decker502/fluffy/pkg/ecs"
)

func TestNewEnemyEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Enemy

	id, err := NewEnemyEntity(em, newTestAssets(), cfg, 10, 100, 800)
	if err != nil {
		t.Fatalf("NewEnemyEntity() error: %v", err)
	}

	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !ok {
		t.Fatal("enemy should have VelocityComponent")
	}
	if vel.VX != cfg.Speed {
		t.Errorf("expected VX %f, got %f", cfg.Speed, vel.VX)
	}

	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
	if !ok {
		t.Fatal("enemy should have EnemyComponent")
	}

	tests := []struct {
		name      string
		got, want float64
	}{
		{"lives", float64(enemy.Lives), float64(cfg.Lives)},
		{"reset lives", float64(enemy.ResetLives), float64(cfg.ResetLives)},
		{"hit duration", enemy.HitDuration, cfg.HitDuration()},
		{"die duration", enemy.DieDuration, cfg.DieDuration()},
		{"spawn x", enemy.SpawnX, 10},
		{"spawn y", enemy.SpawnY, 100},
		{"patrol max", enemy.PatrolMaxX, 800},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %f, got %f", tt.name, tt.want, tt.got)
		}
	}
	if enemy.State != components.EnemyFly {
		t.Errorf("expected Fly state, got %v", enemy.State)
	}

	set, _ := ecs.GetComponent[*components.AnimationSetComponent](em, id)
	die := set.Get(components.EnemyDie.String())
	if die == nil || die.IsLooping {
		t.Error("die animation should exist and play once")
	}
	if fly := set.Get(components.EnemyFly.String()); fly == nil || !fly.IsLooping {
		t.Error("fly animation should loop")
	}

	box, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	if box.Width != 40-cfg.BoxInsetX || box.Height != 30 {
		t.Errorf("expected box %fx30, got %fx%f", 40-cfg.BoxInsetX, box.Width, box.Height)
	}
}

func TestNewEnemyEntityMissingFrames(t *testing.T) {
	assets := newTestAssets()
	delete(assets, AssetEnemyFly)

	if _, err := NewEnemyEntity(ecs.NewEntityManager(), assets, config.DefaultGameConfig().Enemy, 0, 0, 800); err == nil {
		t.Error("expected error when fly frames are missing")
	}
}
