package scenes

import (
	"fmt"

	"github.com/Norlock/space-fighters/pkg/input"
	"github.com/Norlock/space-fighters/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// MainMenuScene represents the main menu screen of the game.
// Enter (or a click) starts a new game; M toggles sound.
type MainMenuScene struct {
	session    *Session
	background *starfield
	render     *render.RenderSystem
}

// NewMainMenuScene creates and returns a new MainMenuScene instance.
func NewMainMenuScene(session *Session) *MainMenuScene {
	w, h := session.Config.Window.Width, session.Config.Window.Height
	return &MainMenuScene{
		session:    session,
		background: newStarfield(w, h, session.Seed),
		render:     render.NewRenderSystem(nil, session.Resources, w, h),
	}
}

// Update handles menu input.
func (m *MainMenuScene) Update(deltaTime float64) {
	m.background.update(deltaTime)

	if input.IsMuteJustPressed() {
		m.session.toggleSound()
	}
	if input.IsStartJustPressed() {
		m.session.Scenes.Load(SceneGame)
	}
}

// Draw renders the title, controls and best score.
func (m *MainMenuScene) Draw(screen *ebiten.Image) {
	m.background.draw(screen)

	h := float64(m.session.Config.Window.Height)
	m.render.DrawCenteredText(screen, m.session.Config.Window.Title, h*0.25, 5)
	m.render.DrawCenteredText(screen, "Press Enter to start", h*0.45, 2)
	m.render.DrawCenteredText(screen, "Arrows / A D to move, Space to fire, P to pause", h*0.55, 1.5)
	m.render.DrawCenteredText(screen, m.session.soundLabel(), h*0.62, 1.5)

	if m.session.Scores != nil {
		record := m.session.Scores.Record()
		line := fmt.Sprintf("Best score: %d   Games played: %d", record.BestScore, record.GamesPlayed)
		m.render.DrawCenteredText(screen, line, h*0.75, 1.5)
	}
}
