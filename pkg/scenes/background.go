package scenes

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// starCount 背景星星数量
const starCount = 120

// star 背景中的一颗星
type star struct {
	x, y  float32
	size  float32
	speed float32 // 向下滚动速度（像素/秒）
	shade uint8
}

// starfield 缓慢向下滚动的星空背景
type starfield struct {
	stars         []star
	width, height float32
}

// newStarfield 创建星空，星星位置由 seed 决定
func newStarfield(width, height int, seed int64) *starfield {
	rng := rand.New(rand.NewSource(seed))
	sf := &starfield{
		stars:  make([]star, starCount),
		width:  float32(width),
		height: float32(height),
	}
	for i := range sf.stars {
		depth := rng.Float32()
		sf.stars[i] = star{
			x:     rng.Float32() * sf.width,
			y:     rng.Float32() * sf.height,
			size:  1 + depth*2,
			speed: 10 + depth*40,
			shade: uint8(90 + depth*165),
		}
	}
	return sf
}

// update 滚动星空，越过底边的星星回到顶部
func (sf *starfield) update(deltaTime float64) {
	for i := range sf.stars {
		s := &sf.stars[i]
		s.y += s.speed * float32(deltaTime)
		if s.y > sf.height {
			s.y -= sf.height
		}
	}
}

// draw renders the background.
func (sf *starfield) draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 5, G: 5, B: 20, A: 255})
	for _, s := range sf.stars {
		c := color.RGBA{R: s.shade, G: s.shade, B: s.shade, A: 255}
		vector.DrawFilledRect(screen, s.x, s.y, s.size, s.size, c, false)
	}
}
