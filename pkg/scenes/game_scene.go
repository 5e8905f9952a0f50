package scenes

import (
	"log"

	"github.com/Norlock/space-fighters/pkg/game"
	"github.com/Norlock/space-fighters/pkg/input"
	"github.com/Norlock/space-fighters/pkg/render"
	"github.com/Norlock/space-fighters/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 一局游戏
// 负责输入（暂停、静音）、推进模拟、绘制世界和 HUD，以及结束时切换到 Gameover 场景
type GameScene struct {
	session    *Session
	sim        *systems.Simulation
	render     *render.RenderSystem
	background *starfield
}

// NewGameScene 创建并立即开始一局新游戏
func NewGameScene(session *Session) *GameScene {
	return newGameScene(session, input.Keyboard{})
}

// newGameScene 使用指定输入创建场景
func newGameScene(session *Session, playerInput systems.PlayerInput) *GameScene {
	cfg := session.Config
	sim := systems.NewSimulation(cfg, playerInput, session.nextRand())
	if sp := session.soundPlayer(); sp != nil {
		sim.SetSoundPlayer(sp)
	}

	scene := &GameScene{
		session:    session,
		sim:        sim,
		render:     render.NewRenderSystem(sim.EntityManager, session.Resources, cfg.Window.Width, cfg.Window.Height),
		background: newStarfield(cfg.Window.Width, cfg.Window.Height, session.Seed),
	}
	sim.GameState.OnGameOver(scene.handleGameOver)
	sim.Start()
	return scene
}

// handleGameOver 记录战绩，每局只调用一次
func (s *GameScene) handleGameOver(gs *game.GameState) {
	s.session.LastGame = gs
	s.session.LastNewBest = false

	if s.session.Scores != nil {
		newBest, err := s.session.Scores.RecordGame(gs)
		if err != nil {
			log.Printf("[GameScene] Warning: Failed to save score: %v", err)
		}
		s.session.LastNewBest = newBest
	}

	s.session.playSound(game.SoundGameOver)
	log.Printf("[GameScene] Game over: score=%d won=%v", gs.Score, gs.Won())
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	if input.IsPauseJustPressed() {
		s.sim.TogglePause()
	}
	if input.IsMuteJustPressed() {
		s.session.toggleSound()
	}

	s.step(deltaTime)
}

// step 推进模拟；游戏结束后切换到 Gameover 场景
func (s *GameScene) step(deltaTime float64) {
	if s.sim.GameState.AppState() == game.AppStateInGame {
		s.background.update(deltaTime)
	}
	s.sim.Update(deltaTime)

	if s.sim.GameState.IsGameOver() {
		s.session.Scenes.Load(SceneGameover)
	}
}

// Draw 绘制背景、实体和 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.background.draw(screen)
	s.render.Draw(screen)
	s.render.DrawHUD(screen, s.sim.GameState)

	if s.sim.GameState.AppState() == game.AppStatePaused {
		h := float64(s.session.Config.Window.Height)
		s.render.DrawCenteredText(screen, "PAUSED", h*0.4, 4)
		s.render.DrawCenteredText(screen, "Press P to resume", h*0.5, 2)
	}
}

// SaveOnExit 在窗口关闭时保存设置
// 未结束的一局不计入战绩
func (s *GameScene) SaveOnExit() bool {
	if s.session.Settings == nil {
		return true
	}
	if err := s.session.Settings.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings on exit: %v", err)
		return false
	}
	return true
}
