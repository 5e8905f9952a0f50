package game

import "fmt"

// SoundID 音效标识
type SoundID int

const (
	SoundPlayerLaser SoundID = iota
	SoundEnemyLaser
	SoundExplosion
	SoundPlayerHit
	SoundGameOver
)

// String 返回音效名，用于日志
func (id SoundID) String() string {
	switch id {
	case SoundPlayerLaser:
		return "player_laser"
	case SoundEnemyLaser:
		return "enemy_laser"
	case SoundExplosion:
		return "explosion"
	case SoundPlayerHit:
		return "player_hit"
	case SoundGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("sound(%d)", int(id))
	}
}

// SoundPlayer 是系统播放音效所需的最小接口
// 系统持有的 SoundPlayer 可以为 nil，表示静音
type SoundPlayer interface {
	PlaySound(id SoundID)
}
