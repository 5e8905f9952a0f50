package systems

import (
	"testing"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/ecs"
	"github.com/Norlock/space-fighters/pkg/entities"
	"github.com/Norlock/space-fighters/pkg/game"
)

const testDeltaTime = 1.0 / 60.0

// fakeInput 可编程的玩家输入
type fakeInput struct {
	axis float64
	fire bool
}

func (f *fakeInput) MoveAxis() float64 { return f.axis }
func (f *fakeInput) FirePressed() bool { return f.fire }

// fakeSound 记录播放过的音效
type fakeSound struct {
	played []game.SoundID
}

func (f *fakeSound) PlaySound(id game.SoundID) {
	f.played = append(f.played, id)
}

func (f *fakeSound) count(id game.SoundID) int {
	n := 0
	for _, played := range f.played {
		if played == id {
			n++
		}
	}
	return n
}

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

func transformOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.TransformComponent {
	t.Helper()
	tf, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no TransformComponent", id)
	}
	return tf
}
