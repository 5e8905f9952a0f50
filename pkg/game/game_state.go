package game

import (
	"fmt"
	"log"
)

// AppState 是整局游戏的状态
type AppState int

const (
	AppStateMainMenu AppState = iota
	AppStateInGame
	AppStatePaused
	AppStateGameover
)

// String 返回状态名，用于日志
func (s AppState) String() string {
	switch s {
	case AppStateMainMenu:
		return "MainMenu"
	case AppStateInGame:
		return "InGame"
	case AppStatePaused:
		return "Paused"
	case AppStateGameover:
		return "Gameover"
	default:
		return fmt.Sprintf("AppState(%d)", int(s))
	}
}

// PlayerState 玩家存活状态
// On == false 表示重生待定；只能通过 Shot 和 Spawned 切换
type PlayerState struct {
	On       bool    // 玩家是否在场
	LastShot float64 // 最近一次被击落的游戏时间（秒），在场时为 -1
}

// Shot 玩家被击落
func (p *PlayerState) Shot(now float64) {
	p.On = false
	p.LastShot = now
}

// Spawned 玩家重生完成
func (p *PlayerState) Spawned() {
	p.On = true
	p.LastShot = -1
}

// GameState 存储一局游戏的全部共享状态
//
// 每局游戏只有一个实例，由场景创建并以指针传给各个系统。
// 计数器只允许以下写入方：
//   - ActiveEnemies: 敌机生成系统（+1）和碰撞系统（-1）
//   - EnemiesLeft / LivesLeft / Score: 碰撞系统
//
// 其余系统和 UI 只读。
type GameState struct {
	ActiveEnemies int // 当前存活的敌机数
	EnemiesLeft   int // 距离胜利还需击落的敌机数
	LivesLeft     int // 剩余生命
	Score         int // 本局击落数

	Player PlayerState

	// Time 是本局已经过的游戏时间（秒），暂停时不前进
	Time float64

	appState         AppState
	gameOverHandlers []func(*GameState)
}

// NewGameState 创建一局新游戏的状态
// 玩家初始为"待重生"，由重生系统在第一帧生成
func NewGameState(enemiesLeft, livesLeft int) *GameState {
	return &GameState{
		EnemiesLeft: enemiesLeft,
		LivesLeft:   livesLeft,
		Player:      PlayerState{On: false, LastShot: -1},
		appState:    AppStateMainMenu,
	}
}

// AppState 返回当前状态
func (gs *GameState) AppState() AppState {
	return gs.appState
}

// IsGameOver 返回游戏是否已结束
func (gs *GameState) IsGameOver() bool {
	return gs.appState == AppStateGameover
}

// canTransition 合法的状态迁移
// Gameover 是终态；InGame 与 Paused 之间可以来回切换
func canTransition(from, to AppState) bool {
	switch from {
	case AppStateMainMenu:
		return to == AppStateInGame
	case AppStateInGame:
		return to == AppStatePaused || to == AppStateGameover
	case AppStatePaused:
		return to == AppStateInGame || to == AppStateGameover
	default:
		return false
	}
}

// TransitionTo 切换状态
// 返回是否真正发生了迁移；非法迁移（包括重复进入 Gameover）返回 false 且没有任何副作用
func (gs *GameState) TransitionTo(to AppState) bool {
	if !canTransition(gs.appState, to) {
		return false
	}

	from := gs.appState
	gs.appState = to
	log.Printf("[GameState] %s -> %s", from, to)

	if to == AppStateGameover {
		for _, handler := range gs.gameOverHandlers {
			handler(gs)
		}
	}
	return true
}

// OnGameOver 注册游戏结束时的回调，每局最多触发一次
func (gs *GameState) OnGameOver(handler func(*GameState)) {
	gs.gameOverHandlers = append(gs.gameOverHandlers, handler)
}

// EnemySpawned 敌机生成计数
func (gs *GameState) EnemySpawned() {
	gs.ActiveEnemies++
}

// EnemyDestroyed 敌机被击落：计数器各减一（不低于 0），计分加一
// 剩余敌机归零时进入 Gameover
func (gs *GameState) EnemyDestroyed() {
	gs.ActiveEnemies = decrement(gs.ActiveEnemies)
	gs.EnemiesLeft = decrement(gs.EnemiesLeft)
	gs.Score++

	if gs.EnemiesLeft == 0 {
		gs.TransitionTo(AppStateGameover)
	}
}

// PlayerDestroyed 玩家被击落：记录时间并扣一条命
// 生命归零时进入 Gameover
func (gs *GameState) PlayerDestroyed() {
	gs.Player.Shot(gs.Time)
	gs.LivesLeft = decrement(gs.LivesLeft)

	if gs.LivesLeft == 0 {
		gs.TransitionTo(AppStateGameover)
	}
}

// Won 返回玩家是否以击落全部敌机结束本局
func (gs *GameState) Won() bool {
	return gs.EnemiesLeft == 0 && gs.LivesLeft > 0
}

// EnemiesLeftText 返回界面上显示的剩余敌机文本
func (gs *GameState) EnemiesLeftText() string {
	return fmt.Sprintf("Enemies left: %d", gs.EnemiesLeft)
}

// LivesLeftText 返回界面上显示的剩余生命文本
func (gs *GameState) LivesLeftText() string {
	return fmt.Sprintf("Lives left: %d", gs.LivesLeft)
}

// decrement 计数器减一，不低于 0
func decrement(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}
