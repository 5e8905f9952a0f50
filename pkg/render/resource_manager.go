package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Register PNG decoder
	"log"
	"os"
	"path/filepath"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ResourceManager is responsible for the game's sprite images.
//
// Two sources are supported:
//   - cfg.Assets.Dir set: every sprite is loaded from that directory (PNG). A missing or
//     undecodable file is a startup error, returned before the game loop begins.
//   - cfg.Assets.Dir empty: sprites are drawn procedurally, so the game runs without any
//     asset files.
//
// When sprites come from disk, the configured sprite sizes are replaced by the real image
// sizes so collision boxes match what is drawn.
//
// This implementation is NOT thread-safe; load everything on the main goroutine.
type ResourceManager struct {
	imageCache      map[string]*ebiten.Image                // Cache for loaded images: path -> Image
	sprites         map[components.SpriteKind]*ebiten.Image // Sprite per kind
	explosionFrames []*ebiten.Image                         // Explosion sheet split into frames, row-major
}

// NewResourceManager creates an empty ResourceManager.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
		sprites:    make(map[components.SpriteKind]*ebiten.Image),
	}
}

// MissingAssets returns the configured asset files that do not exist on disk.
// It returns nil when procedural sprites are configured.
func MissingAssets(cfg *config.GameConfig) []string {
	if cfg.Assets.Dir == "" {
		return nil
	}

	var missing []string
	for _, name := range assetFiles(cfg) {
		path := filepath.Join(cfg.Assets.Dir, name)
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	return missing
}

// assetFiles lists the file names of every sprite the game needs.
func assetFiles(cfg *config.GameConfig) []string {
	a := cfg.Assets
	return []string{a.PlayerSprite, a.EnemySprite, a.LaserSprite, a.EnemyLaserSprite, a.ExplosionSheet}
}

// LoadSprites loads or generates every sprite the game draws.
// cfg.Sprites is updated in place with the real image sizes when loading from disk.
func (rm *ResourceManager) LoadSprites(cfg *config.GameConfig) error {
	if cfg.Assets.Dir == "" {
		rm.generateSprites(cfg)
		log.Printf("[ResourceManager] Using procedural sprites")
		return nil
	}

	if missing := MissingAssets(cfg); len(missing) > 0 {
		return fmt.Errorf("missing required assets: %v", missing)
	}

	a := cfg.Assets
	files := map[components.SpriteKind]string{
		components.SpritePlayer:      a.PlayerSprite,
		components.SpriteEnemy:       a.EnemySprite,
		components.SpritePlayerLaser: a.LaserSprite,
		components.SpriteEnemyLaser:  a.EnemyLaserSprite,
	}
	for kind, name := range files {
		img, err := rm.LoadImage(filepath.Join(a.Dir, name))
		if err != nil {
			return err
		}
		rm.sprites[kind] = img
	}

	sheet, err := rm.LoadImage(filepath.Join(a.Dir, a.ExplosionSheet))
	if err != nil {
		return err
	}
	frames, err := SplitSheet(sheet, cfg.Explosion)
	if err != nil {
		return fmt.Errorf("explosion sheet %s: %w", a.ExplosionSheet, err)
	}
	rm.explosionFrames = frames

	cfg.Sprites.Player = imageSize(rm.sprites[components.SpritePlayer])
	cfg.Sprites.Enemy = imageSize(rm.sprites[components.SpriteEnemy])
	cfg.Sprites.Laser = imageSize(rm.sprites[components.SpritePlayerLaser])

	log.Printf("[ResourceManager] Loaded sprites from %s", a.Dir)
	return nil
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// Sprite returns the image for a sprite kind, or nil if sprites are not loaded.
// For SpriteExplosion use ExplosionFrame.
func (rm *ResourceManager) Sprite(kind components.SpriteKind) *ebiten.Image {
	return rm.sprites[kind]
}

// ExplosionFrame returns one frame of the explosion animation, or nil when out of range.
func (rm *ResourceManager) ExplosionFrame(index int) *ebiten.Image {
	if index < 0 || index >= len(rm.explosionFrames) {
		return nil
	}
	return rm.explosionFrames[index]
}

// SplitSheet cuts a sprite sheet into Columns×Rows tiles, row-major.
func SplitSheet(sheet *ebiten.Image, ec config.ExplosionConfig) ([]*ebiten.Image, error) {
	bounds := sheet.Bounds()
	need := image.Pt(ec.Columns*ec.TileSize, ec.Rows*ec.TileSize)
	if bounds.Dx() < need.X || bounds.Dy() < need.Y {
		return nil, fmt.Errorf("sheet is %dx%d, need at least %dx%d",
			bounds.Dx(), bounds.Dy(), need.X, need.Y)
	}

	frames := make([]*ebiten.Image, 0, ec.FrameCount())
	for row := 0; row < ec.Rows; row++ {
		for col := 0; col < ec.Columns; col++ {
			x0 := bounds.Min.X + col*ec.TileSize
			y0 := bounds.Min.Y + row*ec.TileSize
			rect := image.Rect(x0, y0, x0+ec.TileSize, y0+ec.TileSize)
			frames = append(frames, sheet.SubImage(rect).(*ebiten.Image))
		}
	}
	return frames, nil
}

// generateSprites draws placeholder sprites using the configured sizes.
func (rm *ResourceManager) generateSprites(cfg *config.GameConfig) {
	s := cfg.Sprites

	rm.sprites[components.SpritePlayer] = drawShip(s.Player, color.RGBA{R: 80, G: 200, B: 255, A: 255}, true)
	rm.sprites[components.SpriteEnemy] = drawShip(s.Enemy, color.RGBA{R: 240, G: 90, B: 90, A: 255}, false)
	rm.sprites[components.SpritePlayerLaser] = drawLaser(s.Laser, color.RGBA{R: 120, G: 255, B: 120, A: 255})
	rm.sprites[components.SpriteEnemyLaser] = drawLaser(s.Laser, color.RGBA{R: 255, G: 200, B: 60, A: 255})

	ec := cfg.Explosion
	frames := make([]*ebiten.Image, 0, ec.FrameCount())
	for i := 0; i < ec.FrameCount(); i++ {
		frames = append(frames, drawExplosionFrame(ec.TileSize, i, ec.FrameCount()))
	}
	rm.explosionFrames = frames
}

// drawShip 画一个简单的机身：主体矩形 + 机翼 + 驾驶舱
func drawShip(size config.Size, body color.RGBA, noseUp bool) *ebiten.Image {
	w, h := float32(size.Width), float32(size.Height)
	img := ebiten.NewImage(int(size.Width), int(size.Height))

	// 机翼
	vector.DrawFilledRect(img, 0, h*0.45, w, h*0.25, darken(body), false)
	// 机身
	vector.DrawFilledRect(img, w*0.35, 0, w*0.3, h, body, false)
	// 驾驶舱
	cockpitY := h * 0.25
	if !noseUp {
		cockpitY = h * 0.75
	}
	vector.DrawFilledCircle(img, w/2, cockpitY, w*0.08, color.White, true)
	return img
}

// drawLaser 画一道激光
func drawLaser(size config.Size, clr color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(int(size.Width), int(size.Height))
	img.Fill(clr)
	return img
}

// drawExplosionFrame 画爆炸动画的第 index 帧：半径增大、逐渐变淡
func drawExplosionFrame(tile, index, total int) *ebiten.Image {
	img := ebiten.NewImage(tile, tile)
	progress := float32(index+1) / float32(total)
	center := float32(tile) / 2
	alpha := uint8(255 * (1 - progress*0.8))

	vector.DrawFilledCircle(img, center, center, center*progress,
		color.RGBA{R: 255, G: 140, B: 0, A: alpha}, true)
	vector.DrawFilledCircle(img, center, center, center*progress*0.6,
		color.RGBA{R: 255, G: 240, B: 120, A: alpha}, true)
	return img
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}

func imageSize(img *ebiten.Image) config.Size {
	b := img.Bounds()
	return config.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}
