package scenes

import (
	"log"
	"math/rand"

	"github.com/Norlock/space-fighters/pkg/audio"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/game"
	"github.com/Norlock/space-fighters/pkg/render"
)

// Session 场景之间共享的依赖，以及上一局的结果
type Session struct {
	Config    *config.GameConfig
	Resources *render.ResourceManager
	Settings  *game.SettingsManager
	Scores    *game.ScoreManager
	Audio     *audio.AudioManager // nil 表示没有可用的扬声器
	Scenes    *SceneManager
	Seed      int64 // 敌机随机出生点的种子，每局递增

	LastGame    *game.GameState // 上一局的最终状态，Gameover 场景显示
	LastNewBest bool            // 上一局是否刷新了最高分

	gamesStarted int64
}

// Factory 返回按 SceneID 创建场景的工厂函数
func (s *Session) Factory() SceneFactory {
	return func(id SceneID) Scene {
		switch id {
		case SceneMainMenu:
			return NewMainMenuScene(s)
		case SceneGame:
			return NewGameScene(s)
		case SceneGameover:
			return NewGameoverScene(s)
		default:
			log.Printf("[Session] Unknown scene id: %s", id)
			return nil
		}
	}
}

// nextRand 为新的一局创建随机源
func (s *Session) nextRand() *rand.Rand {
	s.gamesStarted++
	return rand.New(rand.NewSource(s.Seed + s.gamesStarted))
}

// soundPlayer 返回可用的音效播放器
// 没有扬声器时返回 nil 接口，而不是包着 nil 指针的接口
func (s *Session) soundPlayer() game.SoundPlayer {
	if s.Audio == nil {
		return nil
	}
	return s.Audio
}

// playSound 播放音效，静音时什么都不做
func (s *Session) playSound(id game.SoundID) {
	if sp := s.soundPlayer(); sp != nil {
		sp.PlaySound(id)
	}
}

// toggleSound 切换音效开关并保存设置
func (s *Session) toggleSound() {
	if s.Settings == nil {
		return
	}
	enabled := s.Settings.ToggleSound()
	if err := s.Settings.Save(); err != nil {
		log.Printf("[Session] Warning: Failed to save settings: %v", err)
	}
	log.Printf("[Session] Sound enabled: %v", enabled)
}

// soundLabel 返回菜单上显示的音效状态
func (s *Session) soundLabel() string {
	if s.Audio == nil {
		return "Sound: unavailable"
	}
	if s.Settings != nil && !s.Settings.GetSettings().SoundEnabled {
		return "Sound: off (M)"
	}
	return "Sound: on (M)"
}
