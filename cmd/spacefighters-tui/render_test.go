package main

import (
	"testing"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/entities"
	"github.com/Norlock/space-fighters/pkg/game"
	"github.com/Norlock/space-fighters/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		kind components.SpriteKind
		want rune
	}{
		{components.SpritePlayer, 'A'},
		{components.SpriteEnemy, 'W'},
		{components.SpritePlayerLaser, '|'},
		{components.SpriteEnemyLaser, '!'},
	}
	for _, tt := range tests {
		if got, _ := glyphFor(tt.kind, nil); got != tt.want {
			t.Errorf("glyphFor(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestGlyphForExplosionProgress(t *testing.T) {
	first, _ := glyphFor(components.SpriteExplosion, &components.AnimationComponent{FrameCount: 16})
	if first != explosionGlyphs[0] {
		t.Errorf("First explosion frame = %q, want %q", first, explosionGlyphs[0])
	}

	last, _ := glyphFor(components.SpriteExplosion, &components.AnimationComponent{FrameCount: 16, CurrentFrame: 15})
	if last != explosionGlyphs[len(explosionGlyphs)-1] {
		t.Errorf("Last explosion frame = %q, want %q", last, explosionGlyphs[len(explosionGlyphs)-1])
	}

	// 越界的帧号不应 panic
	glyphFor(components.SpriteExplosion, &components.AnimationComponent{FrameCount: 16, CurrentFrame: 99})
}

func TestDrawWorldPlacesEntities(t *testing.T) {
	screen := newTestScreen(t, 120, 41)

	cfg := config.DefaultGameConfig()
	sim := systems.NewSimulation(cfg, nil, nil)
	sim.Start()

	// 敌机在世界原点：映射到网格中心
	if _, err := entities.NewEnemy(sim.EntityManager, cfg, 0, 0); err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}

	drawWorld(screen, sim)

	// 120 列 × 40 行世界区域，原点在 (60, 20)，HUD 占第 0 行
	ch, _, _, _ := screen.GetContent(60, 21)
	if ch != 'W' {
		t.Errorf("Expected enemy glyph at (60,21), got %q", ch)
	}

	hud, _, _, _ := screen.GetContent(0, 0)
	if hud != 'E' {
		t.Errorf("Expected HUD text on row 0, got %q", hud)
	}
}

func TestDrawWorldClipsPartialCells(t *testing.T) {
	screen := newTestScreen(t, 120, 41)

	cfg := config.DefaultGameConfig()
	sim := systems.NewSimulation(cfg, nil, nil)
	sim.Start()

	// 中心在左边界外 0.4 格：应被裁掉，而不是画在第 0 列
	if _, err := entities.NewEnemy(sim.EntityManager, cfg, -604, 0); err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}

	drawWorld(screen, sim)

	if ch, _, _, _ := screen.GetContent(0, 21); ch == 'W' {
		t.Error("Enemy just outside the left edge should not be drawn in column 0")
	}
}

func TestDrawWorldTinyScreen(t *testing.T) {
	screen := newTestScreen(t, 10, 1)
	sim := systems.NewSimulation(config.DefaultGameConfig(), nil, nil)

	drawWorld(screen, sim) // 不应 panic
}

func TestDrawMenu(t *testing.T) {
	screen := newTestScreen(t, 80, 24)

	gs := game.NewGameState(0, 1)
	gs.Score = 30
	drawMenu(screen, "Space Fighters!", gs, 30)

	// 第一行是胜利标题，居中于 80 列
	title := "YOU WIN!"
	x := (80 - len(title)) / 2
	ch, _, _, _ := screen.GetContent(x, 24/2-3)
	if ch != 'Y' {
		t.Errorf("Expected win title at (%d,%d), got %q", x, 24/2-3, ch)
	}
}
