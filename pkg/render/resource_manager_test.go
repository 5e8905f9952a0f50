package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// createTestImage writes a solid blue PNG of the given size.
func createTestImage(path string, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, blue)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// writeAssetDir creates a complete asset directory and returns a config pointing at it.
func writeAssetDir(t *testing.T) *config.GameConfig {
	t.Helper()

	cfg := config.DefaultGameConfig()
	cfg.Assets.Dir = t.TempDir()

	sizes := map[string][2]int{
		cfg.Assets.PlayerSprite:     {100, 50},
		cfg.Assets.EnemySprite:      {80, 70},
		cfg.Assets.LaserSprite:      {8, 40},
		cfg.Assets.EnemyLaserSprite: {8, 40},
		cfg.Assets.ExplosionSheet:   {256, 256},
	}
	for name, size := range sizes {
		if err := createTestImage(filepath.Join(cfg.Assets.Dir, name), size[0], size[1]); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
	return cfg
}

// TestNewResourceManager tests the creation of a new ResourceManager instance.
func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager()

	if rm == nil {
		t.Fatal("NewResourceManager returned nil")
	}
	if rm.imageCache == nil {
		t.Error("imageCache is nil")
	}
	if rm.Sprite(components.SpritePlayer) != nil {
		t.Error("Expected no sprites before LoadSprites")
	}
	if rm.ExplosionFrame(0) != nil {
		t.Error("Expected no explosion frames before LoadSprites")
	}
}

// TestLoadImage_Success tests successful image loading.
func TestLoadImage_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	if err := createTestImage(path, 10, 10); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}

	rm := NewResourceManager()
	img, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 10 || bounds.Dy() != 10 {
		t.Errorf("Image dimensions incorrect: got %dx%d, want 10x10", bounds.Dx(), bounds.Dy())
	}
}

// TestLoadImage_CachingMechanism tests that images are cached properly.
func TestLoadImage_CachingMechanism(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_cache.png")
	if err := createTestImage(path, 10, 10); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}

	rm := NewResourceManager()
	img1, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("First LoadImage failed: %v", err)
	}
	img2, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("Second LoadImage failed: %v", err)
	}

	if img1 != img2 {
		t.Error("Images are not cached - different instances returned")
	}
}

// TestLoadImage_FileNotFound tests error handling when file doesn't exist.
func TestLoadImage_FileNotFound(t *testing.T) {
	rm := NewResourceManager()

	if _, err := rm.LoadImage("nonexistent.png"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

// TestLoadImage_InvalidFormat tests error handling for invalid image format.
func TestLoadImage_InvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(path, []byte("not a valid png"), 0644); err != nil {
		t.Fatalf("Failed to create invalid file: %v", err)
	}

	rm := NewResourceManager()
	if _, err := rm.LoadImage(path); err == nil {
		t.Error("Expected error for invalid image format, got nil")
	}
}

func TestMissingAssets(t *testing.T) {
	cfg := config.DefaultGameConfig()
	if missing := MissingAssets(cfg); missing != nil {
		t.Errorf("Procedural sprites should need no files, got %v", missing)
	}

	cfg = writeAssetDir(t)
	if missing := MissingAssets(cfg); len(missing) != 0 {
		t.Errorf("Expected complete asset dir, missing %v", missing)
	}

	if err := os.Remove(filepath.Join(cfg.Assets.Dir, cfg.Assets.ExplosionSheet)); err != nil {
		t.Fatalf("Failed to remove sheet: %v", err)
	}
	missing := MissingAssets(cfg)
	if len(missing) != 1 || !strings.HasSuffix(missing[0], cfg.Assets.ExplosionSheet) {
		t.Errorf("Expected only the explosion sheet missing, got %v", missing)
	}
}

func TestLoadSprites_Procedural(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rm := NewResourceManager()

	if err := rm.LoadSprites(cfg); err != nil {
		t.Fatalf("LoadSprites failed: %v", err)
	}

	for _, kind := range []components.SpriteKind{
		components.SpritePlayer,
		components.SpriteEnemy,
		components.SpritePlayerLaser,
		components.SpriteEnemyLaser,
	} {
		if rm.Sprite(kind) == nil {
			t.Errorf("Missing procedural sprite %v", kind)
		}
	}

	frames := cfg.Explosion.FrameCount()
	if rm.ExplosionFrame(frames-1) == nil {
		t.Errorf("Expected %d explosion frames", frames)
	}
	if rm.ExplosionFrame(frames) != nil {
		t.Error("Frame index past the end should return nil")
	}

	player := rm.Sprite(components.SpritePlayer).Bounds()
	if player.Dx() != int(cfg.Sprites.Player.Width) || player.Dy() != int(cfg.Sprites.Player.Height) {
		t.Errorf("Procedural player sprite is %dx%d, want configured size", player.Dx(), player.Dy())
	}
}

func TestLoadSprites_FromDisk(t *testing.T) {
	cfg := writeAssetDir(t)
	rm := NewResourceManager()

	if err := rm.LoadSprites(cfg); err != nil {
		t.Fatalf("LoadSprites failed: %v", err)
	}

	if cfg.Sprites.Player != (config.Size{Width: 100, Height: 50}) {
		t.Errorf("Player size not taken from image: %+v", cfg.Sprites.Player)
	}
	if cfg.Sprites.Enemy != (config.Size{Width: 80, Height: 70}) {
		t.Errorf("Enemy size not taken from image: %+v", cfg.Sprites.Enemy)
	}
	if cfg.Sprites.Laser != (config.Size{Width: 8, Height: 40}) {
		t.Errorf("Laser size not taken from image: %+v", cfg.Sprites.Laser)
	}

	frame := rm.ExplosionFrame(5)
	if frame == nil {
		t.Fatal("Expected explosion frame 5")
	}
	// 第 5 帧位于第二行第二列
	if got := frame.Bounds(); got != image.Rect(64, 64, 128, 128) {
		t.Errorf("Frame 5 bounds = %v, want (64,64)-(128,128)", got)
	}
}

func TestLoadSprites_MissingAssetIsFatal(t *testing.T) {
	cfg := writeAssetDir(t)
	if err := os.Remove(filepath.Join(cfg.Assets.Dir, cfg.Assets.PlayerSprite)); err != nil {
		t.Fatalf("Failed to remove sprite: %v", err)
	}

	rm := NewResourceManager()
	err := rm.LoadSprites(cfg)
	if err == nil {
		t.Fatal("Expected error for missing player sprite")
	}
	if !strings.Contains(err.Error(), cfg.Assets.PlayerSprite) {
		t.Errorf("Error should name the missing file, got %v", err)
	}
}

func TestSplitSheet_TooSmall(t *testing.T) {
	sheet := ebiten.NewImage(128, 256)
	ec := config.ExplosionConfig{Columns: 4, Rows: 4, TileSize: 64}

	if _, err := SplitSheet(sheet, ec); err == nil {
		t.Error("Expected error for undersized sheet")
	}

	ec.Columns = 2
	frames, err := SplitSheet(sheet, ec)
	if err != nil {
		t.Fatalf("SplitSheet failed: %v", err)
	}
	if len(frames) != 8 {
		t.Errorf("Expected 8 frames, got %d", len(frames))
	}
}
