// spacefighters-tui 在终端中运行 Space Fighters
//
// 使用与桌面版相同的模拟，只是把实体画成字符。
//
// 用法：
//
//	go run ./cmd/spacefighters-tui [--config game.yaml] [--seed 42] [--mute] [--log tui.log]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Norlock/space-fighters/pkg/audio"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/game"
	"github.com/Norlock/space-fighters/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// tui 终端前端的全部状态
type tui struct {
	screen tcell.Screen
	config *config.GameConfig
	input  *terminalInput

	settings *game.SettingsManager
	scores   *game.ScoreManager
	audio    *audio.AudioManager

	sim   *systems.Simulation
	clock *systems.FixedTimestep
	last  *game.GameState
	seed  int64
	games int64
}

func main() {
	configPath := flag.String("config", "", "Path to a game config YAML (default: built-in)")
	seed := flag.Int64("seed", 0, "Random seed for enemy spawn positions (0 = time based)")
	mute := flag.Bool("mute", false, "Disable sound")
	logPath := flag.String("log", "", "Write logs to this file (the terminal is used for drawing)")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	t := &tui{
		screen:   screen,
		config:   cfg,
		input:    newTerminalInput(),
		settings: game.NewSettingsManager(nil),
		scores:   game.NewScoreManager(nil),
		clock:    systems.NewFixedTimestep(config.TimeStep),
		seed:     *seed,
	}
	if !*mute && cfg.Audio.Enabled {
		am := audio.NewAudioManager(t.settings, cfg.Audio.Volume)
		if err := am.Initialize(); err != nil {
			// 没有声卡时继续运行
			log.Printf("[TUI] Audio initialization failed: %v", err)
		} else {
			t.audio = am
		}
	}
	defer t.cleanup()

	t.run()
}

// newGame 开始新的一局
func (t *tui) newGame() {
	t.games++
	rng := rand.New(rand.NewSource(t.seed + t.games))

	t.input.reset()
	t.clock.Reset()
	t.sim = systems.NewSimulation(t.config, t.input, rng)
	if t.audio != nil {
		t.sim.SetSoundPlayer(t.audio)
	}
	t.sim.GameState.OnGameOver(func(gs *game.GameState) {
		t.last = gs
		if _, err := t.scores.RecordGame(gs); err != nil {
			log.Printf("[TUI] Failed to record game: %v", err)
		}
		if t.audio != nil {
			t.audio.PlaySound(game.SoundGameOver)
		}
	})
	t.sim.Start()
}

// playing 返回是否有正在进行（含暂停）的一局
func (t *tui) playing() bool {
	return t.sim != nil && !t.sim.GameState.IsGameOver()
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (t *tui) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}

		switch {
		case ev.Key() == tcell.KeyEnter:
			if !t.playing() {
				t.newGame()
			}
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == 'P'):
			if t.playing() {
				t.sim.TogglePause()
				t.input.reset()
			}
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M'):
			enabled := t.settings.ToggleSound()
			log.Printf("[TUI] Sound enabled: %v", enabled)
		default:
			t.input.handleKey(ev)
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// step 推进 elapsed 秒的游戏时间
func (t *tui) step(elapsed float64) {
	if !t.playing() {
		return
	}
	for range t.clock.Advance(elapsed) {
		t.sim.Update(t.clock.Step)
	}
}

// draw 绘制当前画面
func (t *tui) draw() {
	t.screen.Clear()
	if t.playing() {
		drawWorld(t.screen, t.sim)
	} else {
		drawMenu(t.screen, t.config.Window.Title, t.last, t.scores.BestScore())
	}
	t.screen.Show()
}

// run 主循环：事件来自 PollEvent 协程，画面按约 60 FPS 刷新
func (t *tui) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	lastTick := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !t.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			t.step(now.Sub(lastTick).Seconds())
			lastTick = now
			t.draw()
		}
	}
}

func (t *tui) cleanup() {
	if t.audio != nil {
		t.audio.Close()
	}
	t.screen.Fini()
}
