// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，负责加载配置、贴图、存档和音效，
// 并把场景管理器包装成 ebiten.Game。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/Norlock/space-fighters/pkg/audio"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/game"
	"github.com/Norlock/space-fighters/pkg/input"
	"github.com/Norlock/space-fighters/pkg/render"
	"github.com/Norlock/space-fighters/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// AppName 存档目录名
const AppName = "space_fighters"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空则使用嵌入的默认配置
	ConfigPath string
	// Seed 敌机随机出生点的种子，0 表示使用当前时间
	Seed int64
	// Mute 禁用音效（不初始化扬声器）
	Mute bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	session                  *scenes.Session
	gameConfig               *config.GameConfig
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 配置非法或贴图缺失时返回错误，游戏不会启动。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	// 创建资源管理器并加载贴图
	resourceManager := render.NewResourceManager()
	if err := resourceManager.LoadSprites(gameConfig); err != nil {
		return nil, fmt.Errorf("贴图加载失败: %w", err)
	}

	// 存档不可用时降级为仅内存
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: Failed to open save storage: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)
	scoreManager := game.NewScoreManager(gdataManager)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sceneManager := scenes.NewSceneManager()
	session := &scenes.Session{
		Config:    gameConfig,
		Resources: resourceManager,
		Settings:  settingsManager,
		Scores:    scoreManager,
		Audio:     newAudio(gameConfig, settingsManager, cfg.Mute),
		Scenes:    sceneManager,
		Seed:      seed,
	}
	sceneManager.SetSceneFactory(session.Factory())
	if !sceneManager.Load(scenes.SceneMainMenu) {
		return nil, fmt.Errorf("主菜单创建失败")
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] Started with seed %d", seed)

	return &App{
		sceneManager: sceneManager,
		session:      session,
		gameConfig:   gameConfig,
	}, nil
}

// newAudio 初始化音频管理器
// 没有声卡时返回 nil，游戏在静音状态下继续运行
func newAudio(cfg *config.GameConfig, sm *game.SettingsManager, mute bool) *audio.AudioManager {
	if mute || !cfg.Audio.Enabled {
		log.Printf("[App] Audio disabled")
		return nil
	}

	audioManager := audio.NewAudioManager(sm, cfg.Audio.Volume)
	if err := audioManager.Initialize(); err != nil {
		log.Printf("[App] Warning: %v (continuing without sound)", err)
		return nil
	}
	log.Printf("[App] AudioManager initialized")
	return audioManager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if input.IsFullscreenJustPressed() {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并记住选择
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if fullscreen {
		ebiten.SetFullscreen(true)
	} else {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.session.Settings.SetFullscreen(fullscreen)
	if err := a.session.Settings.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Window.Width, a.gameConfig.Window.Height
}

// WindowConfig 返回窗口配置，用于设置窗口大小和标题
func (a *App) WindowConfig() config.WindowConfig {
	return a.gameConfig.Window
}

// Shutdown 在游戏关闭时保存设置并释放扬声器
func (a *App) Shutdown() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(scenes.Saveable); ok {
		if saveable.SaveOnExit() {
			log.Printf("[App] Saved on exit")
		}
	}
	if a.session.Audio != nil {
		a.session.Audio.Close()
	}
}
