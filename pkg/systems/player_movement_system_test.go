package systems

import (
	"testing"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/ecs"
)

func TestPlayerMovementSystem_Moves(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	id := mustPlayer(t, em, gs, cfg)
	input := &fakeInput{axis: 1}
	s := NewPlayerMovementSystem(em, cfg, input)

	s.Update(0.1)

	tf := transformOf(t, em, id)
	if tf.X != 50 {
		t.Errorf("player x = %v, want 50", tf.X)
	}

	input.axis = -1
	s.Update(0.2)
	if tf.X != -50 {
		t.Errorf("player x = %v, want -50", tf.X)
	}
}

func TestPlayerMovementSystem_ClampedToWindow(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	id := mustPlayer(t, em, gs, cfg)
	s := NewPlayerMovementSystem(em, cfg, &fakeInput{axis: 1})

	s.Update(10)

	tf := transformOf(t, em, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	want := float64(cfg.Window.Width)/2 - components.BoundsOf(tf, sprite).Width/2
	if tf.X != want {
		t.Errorf("player x = %v, want clamped to %v", tf.X, want)
	}
}

func TestPlayerMovementSystem_NoPlayer(t *testing.T) {
	em, _, cfg := newTestWorld(t)
	s := NewPlayerMovementSystem(em, cfg, &fakeInput{axis: 1})

	s.Update(testDeltaTime) // 不应 panic
}
