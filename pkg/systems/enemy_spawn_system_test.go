package systems

import (
	"math/rand"
	"testing"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/entities"
)

func TestEnemySpawnSystem_SpawnsOnInterval(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	s := NewEnemySpawnSystem(em, gs, cfg, nil)

	s.Update(0.5)
	if gs.ActiveEnemies != 0 {
		t.Fatalf("no enemy expected before the interval, got %d", gs.ActiveEnemies)
	}

	s.Update(0.5)
	if gs.ActiveEnemies != 1 {
		t.Fatalf("ActiveEnemies = %d, want 1", gs.ActiveEnemies)
	}

	enemies := em.EntitiesWithTag(components.TagEnemy)
	if len(enemies) != 1 {
		t.Fatalf("expected 1 enemy entity, got %d", len(enemies))
	}
	wantX, wantY := entities.EnemySpawnPosition(cfg)
	tf := transformOf(t, em, enemies[0])
	if tf.X != wantX || tf.Y != wantY {
		t.Errorf("enemy at (%v, %v), want (%v, %v)", tf.X, tf.Y, wantX, wantY)
	}
}

func TestEnemySpawnSystem_NeverExceedsCap(t *testing.T) {
	tests := []struct {
		name     string
		previous int
		elapsed  float64
		want     int
	}{
		{"empty world, 5 intervals", 0, 5, 5},
		{"empty world, 30 intervals", 0, 30, 20},
		{"one below cap, 3 intervals", 19, 3, 20},
		{"already at cap", 20, 4, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, gs, cfg := newTestWorld(t)
			gs.ActiveEnemies = tt.previous
			s := NewEnemySpawnSystem(em, gs, cfg, nil)

			for elapsed := 0.0; elapsed < tt.elapsed; elapsed += 1.0 {
				s.Update(1.0)
				if gs.ActiveEnemies > cfg.Gameplay.MaxEnemies {
					t.Fatalf("ActiveEnemies %d exceeds cap %d", gs.ActiveEnemies, cfg.Gameplay.MaxEnemies)
				}
			}

			if gs.ActiveEnemies != tt.want {
				t.Errorf("ActiveEnemies = %d, want %d", gs.ActiveEnemies, tt.want)
			}
			if spawned := em.CountWithTag(components.TagEnemy); spawned != tt.want-tt.previous {
				t.Errorf("spawned %d entities, want %d", spawned, tt.want-tt.previous)
			}
		})
	}
}

func TestEnemySpawnSystem_RandomSpawnStaysOnTopRow(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	cfg.Gameplay.RandomSpawn = true
	s := NewEnemySpawnSystem(em, gs, cfg, rand.New(rand.NewSource(42)))

	s.Update(10)

	_, wantY := entities.EnemySpawnPosition(cfg)
	half := float64(cfg.Window.Width) / 2
	for _, id := range em.EntitiesWithTag(components.TagEnemy) {
		tf := transformOf(t, em, id)
		if tf.Y != wantY {
			t.Errorf("enemy %d y = %v, want %v", id, tf.Y, wantY)
		}
		if tf.X < -half || tf.X > half {
			t.Errorf("enemy %d x = %v outside the window", id, tf.X)
		}
	}
	if gs.ActiveEnemies != 10 {
		t.Errorf("ActiveEnemies = %d, want 10", gs.ActiveEnemies)
	}
}
