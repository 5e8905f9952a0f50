package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Norlock/space-fighters/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 表示配置文件内容不合法
var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig 游戏配置数据结构
// 所有字段都可以省略，缺失的字段由 applyDefaults 填充
type GameConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Sprites   SpritesConfig   `yaml:"sprites"`
	Assets    AssetsConfig    `yaml:"assets"`
	Audio     AudioConfig     `yaml:"audio"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 窗口宽度（逻辑像素）
	Height int    `yaml:"height"` // 窗口高度（逻辑像素）
	Title  string `yaml:"title"`  // 窗口标题
}

// GameplayConfig 玩法参数
type GameplayConfig struct {
	MaxEnemies         int     `yaml:"maxEnemies"`         // 同时存活的敌机上限
	EnemiesLeft        int     `yaml:"enemiesLeft"`        // 本局需要击落的敌机总数
	LivesLeft          int     `yaml:"livesLeft"`          // 初始生命数
	Speed              float64 `yaml:"speed"`              // 实体默认速度（像素/秒）
	EnemySpeedFactor   float64 `yaml:"enemySpeedFactor"`   // 敌机水平速度倍率
	EnemyRowHeight     float64 `yaml:"enemyRowHeight"`     // 敌机换行下降高度
	EnemySpawnInterval float64 `yaml:"enemySpawnInterval"` // 敌机生成间隔（秒）
	EnemyFireInterval  float64 `yaml:"enemyFireInterval"`  // 敌机开火间隔（秒）
	RespawnDelay       float64 `yaml:"respawnDelay"`       // 玩家重生延迟（秒）
	RandomSpawn        bool    `yaml:"randomSpawn"`        // 敌机是否在顶部随机位置出生，默认固定在左上角
	EnemyLaserDriftX   float64 `yaml:"enemyLaserDriftX"`   // 敌机激光每帧水平漂移
	LaserDespawnMargin float64 `yaml:"laserDespawnMargin"` // 激光越界销毁距离
	Scale              float64 `yaml:"scale"`              // 精灵缩放
}

// ExplosionConfig 爆炸动画参数
type ExplosionConfig struct {
	Columns       int     `yaml:"columns"`       // 精灵表列数
	Rows          int     `yaml:"rows"`          // 精灵表行数
	TileSize      int     `yaml:"tileSize"`      // 单帧边长（像素）
	FrameDuration float64 `yaml:"frameDuration"` // 每帧时长（秒）
}

// FrameCount 返回爆炸动画的总帧数
func (c ExplosionConfig) FrameCount() int {
	return c.Columns * c.Rows
}

// Size 精灵原始尺寸
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpritesConfig 精灵尺寸，用于碰撞盒计算和程序化贴图
type SpritesConfig struct {
	Player Size `yaml:"player"`
	Enemy  Size `yaml:"enemy"`
	Laser  Size `yaml:"laser"`
}

// AssetsConfig 贴图资源
// Dir 为空时使用程序化生成的贴图；非空时所有贴图都必须存在，否则启动失败
type AssetsConfig struct {
	Dir              string `yaml:"dir"`
	PlayerSprite     string `yaml:"playerSprite"`
	EnemySprite      string `yaml:"enemySprite"`
	LaserSprite      string `yaml:"laserSprite"`
	EnemyLaserSprite string `yaml:"enemyLaserSprite"`
	ExplosionSheet   string `yaml:"explosionSheet"`
}

// AudioConfig 音效配置
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 以 2 为底的音量偏移，0 为原始音量，负值更小
}

// DefaultGameConfig 返回全部使用默认值的配置
func DefaultGameConfig() *GameConfig {
	cfg := &GameConfig{Audio: AudioConfig{Enabled: true}}
	applyDefaults(cfg)
	return cfg
}

// LoadGameConfig 从YAML文件加载游戏配置
// 参数：
//
//	filepath - 配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*GameConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadGameConfig(filepath string) (*GameConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", filepath, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// Load 加载游戏配置
// 优先使用 path 指定的文件，其次是嵌入的默认配置，最后是内置默认值
func Load(path string) (*GameConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading game config: %s", path)
		return LoadGameConfig(path)
	}

	data, err := embedded.ReadFile(embedded.DefaultConfigPath)
	if err != nil {
		log.Printf("[Config] Embedded config unavailable (%v), using defaults", err)
		return DefaultGameConfig(), nil
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析YAML内容并应用默认值和校验
// 用于嵌入的默认配置和磁盘上的配置文件
func ParseGameConfig(data []byte) (*GameConfig, error) {
	// 音效默认开启；YAML 中显式写 false 才关闭
	cfg := GameConfig{Audio: AudioConfig{Enabled: true}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateGameConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 为缺失的可选字段设置默认值
func applyDefaults(cfg *GameConfig) {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = GameWindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = GameWindowHeight
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = GameWindowTitle
	}

	g := &cfg.Gameplay
	if g.MaxEnemies == 0 {
		g.MaxEnemies = MaxEnemies
	}
	if g.EnemiesLeft == 0 {
		g.EnemiesLeft = InitialEnemiesLeft
	}
	if g.LivesLeft == 0 {
		g.LivesLeft = InitialLivesLeft
	}
	if g.Speed == 0 {
		g.Speed = DefaultSpeed
	}
	if g.EnemySpeedFactor == 0 {
		g.EnemySpeedFactor = EnemySpeedFactor
	}
	if g.EnemyRowHeight == 0 {
		g.EnemyRowHeight = EnemyRowHeight
	}
	if g.EnemySpawnInterval == 0 {
		g.EnemySpawnInterval = EnemySpawnInterval
	}
	if g.EnemyFireInterval == 0 {
		g.EnemyFireInterval = EnemyFireInterval
	}
	if g.RespawnDelay == 0 {
		g.RespawnDelay = PlayerRespawnDelay
	}
	if g.EnemyLaserDriftX == 0 {
		g.EnemyLaserDriftX = EnemyLaserDriftX
	}
	if g.LaserDespawnMargin == 0 {
		g.LaserDespawnMargin = LaserDespawnMargin
	}
	if g.Scale == 0 {
		g.Scale = SpriteScale
	}

	e := &cfg.Explosion
	if e.Columns == 0 {
		e.Columns = ExplosionColumns
	}
	if e.Rows == 0 {
		e.Rows = ExplosionRows
	}
	if e.TileSize == 0 {
		e.TileSize = ExplosionTileSize
	}
	if e.FrameDuration == 0 {
		e.FrameDuration = ExplosionFrameDuration
	}

	s := &cfg.Sprites
	if s.Player == (Size{}) {
		s.Player = Size{Width: PlayerSpriteWidth, Height: PlayerSpriteHeight}
	}
	if s.Enemy == (Size{}) {
		s.Enemy = Size{Width: EnemySpriteWidth, Height: EnemySpriteHeight}
	}
	if s.Laser == (Size{}) {
		s.Laser = Size{Width: LaserSpriteWidth, Height: LaserSpriteHeight}
	}

	a := &cfg.Assets
	if a.PlayerSprite == "" {
		a.PlayerSprite = "player_a_01.png"
	}
	if a.EnemySprite == "" {
		a.EnemySprite = "enemy_a_01.png"
	}
	if a.LaserSprite == "" {
		a.LaserSprite = "laser_a_01.png"
	}
	if a.EnemyLaserSprite == "" {
		a.EnemyLaserSprite = "laser_b_01.png"
	}
	if a.ExplosionSheet == "" {
		a.ExplosionSheet = "explo_a_sheet.png"
	}
	// Dir 为空表示使用程序化贴图，不设默认值
}

// validateGameConfig 验证配置的合法性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d",
			ErrInvalidConfig, cfg.Window.Width, cfg.Window.Height)
	}

	g := cfg.Gameplay
	if g.MaxEnemies < 0 {
		return fmt.Errorf("%w: maxEnemies cannot be negative, got %d", ErrInvalidConfig, g.MaxEnemies)
	}
	if g.EnemiesLeft < 0 {
		return fmt.Errorf("%w: enemiesLeft cannot be negative, got %d", ErrInvalidConfig, g.EnemiesLeft)
	}
	if g.LivesLeft < 0 {
		return fmt.Errorf("%w: livesLeft cannot be negative, got %d", ErrInvalidConfig, g.LivesLeft)
	}
	if g.Speed < 0 {
		return fmt.Errorf("%w: speed cannot be negative, got %v", ErrInvalidConfig, g.Speed)
	}
	if g.EnemySpawnInterval < 0 || g.EnemyFireInterval < 0 {
		return fmt.Errorf("%w: spawn and fire intervals must be positive", ErrInvalidConfig)
	}
	if g.RespawnDelay < 0 {
		return fmt.Errorf("%w: respawnDelay cannot be negative, got %v", ErrInvalidConfig, g.RespawnDelay)
	}

	e := cfg.Explosion
	if e.Columns < 0 || e.Rows < 0 || e.TileSize < 0 {
		return fmt.Errorf("%w: explosion sheet dimensions must be positive", ErrInvalidConfig)
	}
	if e.FrameDuration < 0 {
		return fmt.Errorf("%w: explosion frameDuration cannot be negative, got %v", ErrInvalidConfig, e.FrameDuration)
	}

	for name, size := range map[string]Size{
		"player": cfg.Sprites.Player,
		"enemy":  cfg.Sprites.Enemy,
		"laser":  cfg.Sprites.Laser,
	} {
		// 贴图按整数像素生成，小于 1 像素的尺寸无法创建图像
		if size.Width < 1 || size.Height < 1 {
			return fmt.Errorf("%w: sprite %s must be at least 1x1 pixels, got %vx%v",
				ErrInvalidConfig, name, size.Width, size.Height)
		}
	}

	return nil
}
