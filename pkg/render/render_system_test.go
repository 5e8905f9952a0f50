package render

import (
	"testing"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/ecs"
	"github.com/Norlock/space-fighters/pkg/entities"
	"github.com/Norlock/space-fighters/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// newTestWorld 创建一个处于 InGame 状态的空世界
func newTestWorld(t *testing.T) (*ecs.EntityManager, *game.GameState, *config.GameConfig) {
	t.Helper()
	cfg := config.DefaultGameConfig()
	gs := game.NewGameState(cfg.Gameplay.EnemiesLeft, cfg.Gameplay.LivesLeft)
	if !gs.TransitionTo(game.AppStateInGame) {
		t.Fatal("failed to enter InGame")
	}
	return ecs.NewEntityManager(), gs, cfg
}

func mustEnemy(t *testing.T, em *ecs.EntityManager, gs *game.GameState, cfg *config.GameConfig, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemy(em, cfg, x, y)
	if err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}
	gs.EnemySpawned()
	return id
}

func mustPlayer(t *testing.T, em *ecs.EntityManager, gs *game.GameState, cfg *config.GameConfig) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlayer(em, cfg)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	gs.Player.Spawned()
	return id
}

func TestRenderSystem_DrawOrder(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	explosion, _ := entities.NewExplosion(em, cfg, 0, 0)
	player := mustPlayer(t, em, gs, cfg)
	enemy := mustEnemy(t, em, gs, cfg, 0, 100)
	laser, _ := entities.NewEnemyLaser(em, cfg, 0, 100)

	s := NewRenderSystem(em, nil, cfg.Window.Width, cfg.Window.Height)
	got := s.drawOrder()

	want := []ecs.EntityID{laser, enemy, player, explosion}
	if len(got) != len(want) {
		t.Fatalf("drawOrder() returned %d entities, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("drawOrder()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRenderSystem_DrawWithProceduralSprites(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	rm := NewResourceManager()
	if err := rm.LoadSprites(cfg); err != nil {
		t.Fatalf("LoadSprites failed: %v", err)
	}

	mustPlayer(t, em, gs, cfg)
	mustEnemy(t, em, gs, cfg, 0, 100)
	id, _ := entities.NewExplosion(em, cfg, 0, 0)
	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
	anim.CurrentFrame = anim.FrameCount // 终止帧没有图像，应被跳过

	s := NewRenderSystem(em, rm, cfg.Window.Width, cfg.Window.Height)
	screen := ebiten.NewImage(cfg.Window.Width, cfg.Window.Height)

	// 不应 panic
	s.Draw(screen)
	s.DrawHUD(screen, gs)
	s.DrawCenteredText(screen, "GAME OVER", 100, 3)
}
