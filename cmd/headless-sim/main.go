// headless-sim 在没有窗口的情况下运行模拟，用于验证玩法参数
//
// 玩家由一个简单的自动驾驶控制：左右来回移动并持续开火。
// 结束后打印本局的计数器。
//
// 用法：
//
//	go run ./cmd/headless-sim --seconds 120 --seed 7 [--config game.yaml] [--verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/game"
	"github.com/Norlock/space-fighters/pkg/systems"
)

// Result 一次无界面模拟的结果
type Result struct {
	Ticks         int
	Time          float64
	State         game.AppState
	Score         int
	EnemiesLeft   int
	LivesLeft     int
	ActiveEnemies int
	Entities      int
}

// autopilot 左右往返移动，每隔一帧按一次开火键
type autopilot struct {
	sim   *systems.Simulation
	ticks int
	dir   float64
}

func (a *autopilot) MoveAxis() float64 {
	half := float64(a.sim.Config.Window.Width) / 2 * 0.8
	if x, _, ok := a.sim.PlayerPosition(); ok {
		if x >= half {
			a.dir = -1
		} else if x <= -half {
			a.dir = 1
		}
	}
	return a.dir
}

func (a *autopilot) FirePressed() bool {
	return a.ticks%2 == 0
}

// Run 运行模拟，直到游戏结束或达到 seconds 秒
func Run(cfg *config.GameConfig, seconds float64, seed int64) Result {
	pilot := &autopilot{dir: 1}
	sim := systems.NewSimulation(cfg, pilot, rand.New(rand.NewSource(seed)))
	pilot.sim = sim
	sim.Start()

	ticks := 0
	for sim.GameState.Time+config.TimeStep/2 < seconds && !sim.GameState.IsGameOver() {
		sim.Update(config.TimeStep)
		ticks++
		pilot.ticks = ticks
	}

	gs := sim.GameState
	return Result{
		Ticks:         ticks,
		Time:          gs.Time,
		State:         gs.AppState(),
		Score:         gs.Score,
		EnemiesLeft:   gs.EnemiesLeft,
		LivesLeft:     gs.LivesLeft,
		ActiveEnemies: gs.ActiveEnemies,
		Entities:      sim.EntityManager.EntityCount(),
	}
}

func main() {
	seconds := flag.Float64("seconds", 60, "Simulated seconds to run")
	seed := flag.Int64("seed", 1, "Random seed for enemy spawn positions")
	configPath := flag.String("config", "", "Path to a game config YAML (default: built-in)")
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	r := Run(cfg, *seconds, *seed)
	fmt.Printf("ticks=%d time=%.2fs state=%s\n", r.Ticks, r.Time, r.State)
	fmt.Printf("score=%d enemies_left=%d lives_left=%d active_enemies=%d entities=%d\n",
		r.Score, r.EnemiesLeft, r.LivesLeft, r.ActiveEnemies, r.Entities)
}
