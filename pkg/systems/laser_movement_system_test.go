package systems

import (
	"testing"

	"github.com/Norlock/space-fighters/pkg/entities"
)

func TestLaserMovementSystem_Directions(t *testing.T) {
	em, _, cfg := newTestWorld(t)
	up, _ := entities.NewPlayerLaser(em, cfg, 0, 0)
	down, _ := entities.NewEnemyLaser(em, cfg, 0, 15)
	s := NewLaserMovementSystem(em, cfg)

	s.Update(0.1)

	upTf := transformOf(t, em, up)
	if upTf.X != 0 || upTf.Y != 50 {
		t.Errorf("player laser at (%v, %v), want (0, 50)", upTf.X, upTf.Y)
	}
	downTf := transformOf(t, em, down)
	if downTf.X != cfg.Gameplay.EnemyLaserDriftX || downTf.Y != -50 {
		t.Errorf("enemy laser at (%v, %v), want (%v, -50)", downTf.X, downTf.Y, cfg.Gameplay.EnemyLaserDriftX)
	}
}

func TestLaserMovementSystem_DespawnOffScreen(t *testing.T) {
	em, _, cfg := newTestWorld(t)
	limit := float64(cfg.Window.Height)/2 + cfg.Gameplay.LaserDespawnMargin

	leaving, _ := entities.NewPlayerLaser(em, cfg, 0, limit-1)
	staying, _ := entities.NewPlayerLaser(em, cfg, 0, 0)
	falling, _ := entities.NewEnemyLaser(em, cfg, 0, -limit+1+15)
	s := NewLaserMovementSystem(em, cfg)

	s.Update(0.01)

	if !em.IsMarked(leaving) {
		t.Error("player laser beyond the top margin should be destroyed")
	}
	if !em.IsMarked(falling) {
		t.Error("enemy laser beyond the bottom margin should be destroyed")
	}
	if em.IsMarked(staying) {
		t.Error("on-screen laser must not be destroyed")
	}
}
