package config

// 布局与节奏常量
// 本文件定义了未经配置文件覆盖时使用的默认值
//
// 坐标系约定：原点在窗口中心，X 轴向右，Y 轴向上（与渲染层的屏幕坐标不同，
// 转换见 utils.WorldToScreen）

const (
	// GameWindowWidth 是默认窗口宽度（逻辑像素）
	GameWindowWidth = 1200

	// GameWindowHeight 是默认窗口高度（逻辑像素）
	GameWindowHeight = 800

	// GameWindowTitle 是默认窗口标题
	GameWindowTitle = "Space Fighters!"

	// TimeStep 是模拟一帧的时长（秒）
	TimeStep = 1.0 / 60.0

	// SpriteScale 是所有精灵的默认缩放
	SpriteScale = 0.5
)

// 玩法常量
const (
	// MaxEnemies 是同时存活的敌机上限
	MaxEnemies = 20

	// DefaultSpeed 是实体默认速度（像素/秒）
	DefaultSpeed = 500.0

	// EnemySpeedFactor 是敌机水平移动相对默认速度的倍率
	EnemySpeedFactor = 0.3

	// EnemyRowHeight 是敌机到达右边界后下降的高度
	EnemyRowHeight = 64.0

	// EnemySpawnInterval 是敌机生成的固定间隔（秒）
	EnemySpawnInterval = 1.0

	// EnemyFireInterval 是敌机开火的固定间隔（秒）
	EnemyFireInterval = 0.9

	// EnemySpawnInset 是敌机出生点距离左上角的内缩距离
	EnemySpawnInset = 50.0

	// EnemyLaserOffsetY 是敌机激光相对敌机中心的下移量
	EnemyLaserOffsetY = 15.0

	// EnemyLaserDriftX 是敌机激光每帧的水平漂移
	EnemyLaserDriftX = 1.0

	// PlayerLaserOffsetX 是玩家两道激光相对机身中心的水平偏移
	PlayerLaserOffsetX = 13.0

	// PlayerLaserOffsetY 是玩家激光相对机身中心的上移量
	PlayerLaserOffsetY = 15.0

	// PlayerBottomMargin 是玩家机身底部到窗口底边的距离
	PlayerBottomMargin = 5.0

	// LaserDespawnMargin 是激光越过上下边界多远后被销毁
	LaserDespawnMargin = 50.0

	// InitialEnemiesLeft 是本局需要击落的敌机总数
	InitialEnemiesLeft = 30

	// InitialLivesLeft 是初始生命数
	InitialLivesLeft = 3

	// PlayerRespawnDelay 是玩家被击落后重生的延迟（秒）
	PlayerRespawnDelay = 2.0
)

// 爆炸动画常量
const (
	// ExplosionColumns 是爆炸精灵表的列数
	ExplosionColumns = 4

	// ExplosionRows 是爆炸精灵表的行数
	ExplosionRows = 4

	// ExplosionTileSize 是爆炸精灵表中单帧的边长（像素）
	ExplosionTileSize = 64

	// ExplosionFrameDuration 是爆炸动画每帧的时长（秒）
	ExplosionFrameDuration = 0.05
)

// 精灵原始尺寸（未缩放，像素）
// 从磁盘加载贴图时会被贴图的真实尺寸覆盖
const (
	PlayerSpriteWidth  = 144.0
	PlayerSpriteHeight = 75.0

	EnemySpriteWidth  = 93.0
	EnemySpriteHeight = 84.0

	LaserSpriteWidth  = 9.0
	LaserSpriteHeight = 54.0
)
