package game

import "testing"

// newInGameState 创建一局已经开始的游戏
func newInGameState(enemiesLeft, livesLeft int) *GameState {
	gs := NewGameState(enemiesLeft, livesLeft)
	gs.TransitionTo(AppStateInGame)
	return gs
}

// TestNewGameState 测试新一局的初始状态
func TestNewGameState(t *testing.T) {
	gs := NewGameState(30, 3)

	if gs.AppState() != AppStateMainMenu {
		t.Errorf("AppState = %v, want MainMenu", gs.AppState())
	}
	if gs.EnemiesLeft != 30 || gs.LivesLeft != 3 || gs.ActiveEnemies != 0 {
		t.Errorf("Counters = (%d, %d, %d), want (30, 3, 0)", gs.EnemiesLeft, gs.LivesLeft, gs.ActiveEnemies)
	}
	if gs.Player.On {
		t.Error("Player should start pending spawn")
	}
}

// TestPlayerState_ShotAndSpawned 测试玩家状态只能通过 Shot/Spawned 切换
func TestPlayerState_ShotAndSpawned(t *testing.T) {
	p := PlayerState{}
	p.Spawned()
	if !p.On || p.LastShot != -1 {
		t.Errorf("After Spawned: On=%v LastShot=%v, want true/-1", p.On, p.LastShot)
	}

	p.Shot(12.5)
	if p.On || p.LastShot != 12.5 {
		t.Errorf("After Shot: On=%v LastShot=%v, want false/12.5", p.On, p.LastShot)
	}
}

// TestTransitionTo 测试状态迁移规则
func TestTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AppState
		to   AppState
		want bool
	}{
		{"开始游戏", AppStateMainMenu, AppStateInGame, true},
		{"菜单不能直接结束", AppStateMainMenu, AppStateGameover, false},
		{"暂停", AppStateInGame, AppStatePaused, true},
		{"继续", AppStatePaused, AppStateInGame, true},
		{"结束", AppStateInGame, AppStateGameover, true},
		{"结束是终态", AppStateGameover, AppStateInGame, false},
		{"重复结束", AppStateGameover, AppStateGameover, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState(1, 1)
			gs.appState = tt.from
			if got := gs.TransitionTo(tt.to); got != tt.want {
				t.Errorf("TransitionTo(%v) from %v = %v, want %v", tt.to, tt.from, got, tt.want)
			}
		})
	}
}

// TestGameOverIdempotent 测试重复进入 Gameover 不会重复触发副作用
func TestGameOverIdempotent(t *testing.T) {
	gs := newInGameState(5, 3)
	calls := 0
	gs.OnGameOver(func(*GameState) { calls++ })

	gs.TransitionTo(AppStateGameover)
	gs.TransitionTo(AppStateGameover)

	if gs.AppState() != AppStateGameover {
		t.Errorf("AppState = %v, want Gameover", gs.AppState())
	}
	if calls != 1 {
		t.Errorf("Game over handler called %d times, want 1", calls)
	}
}

// TestEnemyDestroyed 测试击落敌机的计数和结束条件
func TestEnemyDestroyed(t *testing.T) {
	gs := newInGameState(2, 3)
	gs.EnemySpawned()
	gs.EnemySpawned()

	gs.EnemyDestroyed()
	if gs.EnemiesLeft != 1 || gs.ActiveEnemies != 1 || gs.Score != 1 {
		t.Errorf("After 1 kill: left=%d active=%d score=%d, want 1/1/1", gs.EnemiesLeft, gs.ActiveEnemies, gs.Score)
	}
	if gs.IsGameOver() {
		t.Error("Game should not be over with enemies left")
	}

	gs.EnemyDestroyed()
	if !gs.IsGameOver() {
		t.Error("Game should be over when EnemiesLeft reaches 0")
	}
	if !gs.Won() {
		t.Error("Clearing all enemies with lives left should be a win")
	}

	// 计数器不得为负
	gs.EnemyDestroyed()
	if gs.EnemiesLeft != 0 || gs.ActiveEnemies != 0 {
		t.Errorf("Counters went negative: left=%d active=%d", gs.EnemiesLeft, gs.ActiveEnemies)
	}
}

// TestPlayerDestroyed 测试玩家被击落
func TestPlayerDestroyed(t *testing.T) {
	gs := newInGameState(10, 1)
	gs.Player.Spawned()
	gs.Time = 4.2

	gs.PlayerDestroyed()

	if gs.Player.On {
		t.Error("PlayerState.On should be false after being shot")
	}
	if gs.Player.LastShot != 4.2 {
		t.Errorf("LastShot = %v, want 4.2", gs.Player.LastShot)
	}
	if gs.LivesLeft != 0 {
		t.Errorf("LivesLeft = %d, want 0", gs.LivesLeft)
	}
	if gs.AppState() != AppStateGameover {
		t.Errorf("AppState = %v, want Gameover", gs.AppState())
	}
	if gs.Won() {
		t.Error("Losing all lives is not a win")
	}
}

// TestHUDText 测试界面文本
func TestHUDText(t *testing.T) {
	gs := NewGameState(7, 2)
	if got := gs.EnemiesLeftText(); got != "Enemies left: 7" {
		t.Errorf("EnemiesLeftText() = %q", got)
	}
	if got := gs.LivesLeftText(); got != "Lives left: 2" {
		t.Errorf("LivesLeftText() = %q", got)
	}
}
