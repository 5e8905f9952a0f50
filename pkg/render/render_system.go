// Package render 负责桌面端的贴图加载和世界绘制
package render

import (
	"image/color"
	"sort"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/ecs"
	"github.com/Norlock/space-fighters/pkg/game"
	"github.com/Norlock/space-fighters/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// 绘制层级（从底到顶）
var spriteLayers = map[components.SpriteKind]int{
	components.SpritePlayerLaser: 0,
	components.SpriteEnemyLaser:  0,
	components.SpriteEnemy:       1,
	components.SpritePlayer:      2,
	components.SpriteExplosion:   3,
}

// RenderSystem 把游戏世界绘制到屏幕上
//
// 世界坐标原点在窗口中心、Y 轴向上，绘制时通过 utils.WorldToScreen 转换。
// 渲染顺序（从底到顶）：激光 → 敌机 → 玩家 → 爆炸，之后绘制 HUD 文本。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	resources     *ResourceManager
	screenWidth   int
	screenHeight  int
	hudFace       text.Face
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, rm *ResourceManager, screenWidth, screenHeight int) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		resources:     rm,
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
		hudFace:       text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw 绘制所有带变换和精灵组件的实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.drawOrder() {
		s.drawEntity(screen, id)
	}
}

// drawOrder 按层级排序的实体列表；同层按实体槽位排序
func (s *RenderSystem) drawOrder() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.SpriteComponent](s.entityManager)

	layer := func(id ecs.EntityID) int {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		return spriteLayers[sprite.Kind]
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return layer(ids[i]) < layer(ids[j])
	})
	return ids
}

// drawEntity 绘制单个实体
// 爆炸使用动画当前帧；找不到图像（如动画已到终止帧）时跳过
func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	if s.resources == nil {
		return
	}
	tf, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

	var img *ebiten.Image
	if sprite.Kind == components.SpriteExplosion {
		anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		if !ok {
			return
		}
		img = s.resources.ExplosionFrame(anim.CurrentFrame)
	} else {
		img = s.resources.Sprite(sprite.Kind)
	}
	if img == nil {
		return
	}

	bounds := img.Bounds()
	screenX, screenY := utils.WorldToScreen(tf.X, tf.Y, s.screenWidth, s.screenHeight)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Scale(tf.ScaleX, tf.ScaleY)
	op.GeoM.Translate(screenX, screenY)
	screen.DrawImage(img, op)
}

// DrawHUD 在左上角绘制剩余敌机和剩余生命
func (s *RenderSystem) DrawHUD(screen *ebiten.Image, gs *game.GameState) {
	lines := []string{gs.EnemiesLeftText(), gs.LivesLeftText()}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Scale(2, 2)
		op.GeoM.Translate(12, 12+float64(i)*32)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, s.hudFace, op)
	}
}

// DrawCenteredText 在屏幕水平居中的位置绘制一行文字
func (s *RenderSystem) DrawCenteredText(screen *ebiten.Image, line string, y float64, scale float64) {
	DrawCenteredText(screen, s.hudFace, line, float64(s.screenWidth)/2, y, scale)
}

// DrawCenteredText 以 (centerX, y) 为顶部中点绘制一行文字
func DrawCenteredText(screen *ebiten.Image, face text.Face, line string, centerX, y, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, line, face, op)
}
