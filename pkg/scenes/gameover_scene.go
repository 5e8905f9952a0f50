package scenes

import (
	"fmt"

	"github.com/Norlock/space-fighters/pkg/input"
	"github.com/Norlock/space-fighters/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameoverScene 显示上一局的结果
// Enter 开始新的一局
type GameoverScene struct {
	session    *Session
	background *starfield
	render     *render.RenderSystem
}

// NewGameoverScene 创建结算场景
func NewGameoverScene(session *Session) *GameoverScene {
	w, h := session.Config.Window.Width, session.Config.Window.Height
	return &GameoverScene{
		session:    session,
		background: newStarfield(w, h, session.Seed),
		render:     render.NewRenderSystem(nil, session.Resources, w, h),
	}
}

// Update handles restart input.
func (g *GameoverScene) Update(deltaTime float64) {
	g.background.update(deltaTime)
	if input.IsStartJustPressed() {
		g.session.Scenes.Load(SceneGame)
	}
}

// Draw renders the result summary.
func (g *GameoverScene) Draw(screen *ebiten.Image) {
	g.background.draw(screen)

	h := float64(g.session.Config.Window.Height)
	for i, line := range g.summary() {
		scale := 2.0
		if i == 0 {
			scale = 5
		}
		g.render.DrawCenteredText(screen, line, h*0.25+float64(i)*h*0.1, scale)
	}
}

// summary 返回结算画面上的文字，第一行是标题
func (g *GameoverScene) summary() []string {
	gs := g.session.LastGame
	if gs == nil {
		return []string{"GAME OVER", "Press Enter to play again"}
	}

	title := "GAME OVER"
	if gs.Won() {
		title = "YOU WIN!"
	}
	lines := []string{
		title,
		fmt.Sprintf("Score: %d", gs.Score),
		gs.EnemiesLeftText() + "   " + gs.LivesLeftText(),
	}
	if g.session.Scores != nil {
		best := fmt.Sprintf("Best score: %d", g.session.Scores.BestScore())
		if g.session.LastNewBest {
			best += "  New best!"
		}
		lines = append(lines, best)
	}
	return append(lines, "Press Enter to play again")
}
