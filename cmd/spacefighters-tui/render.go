package main

import (
	"fmt"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/ecs"
	"github.com/Norlock/space-fighters/pkg/game"
	"github.com/Norlock/space-fighters/pkg/systems"
	"github.com/Norlock/space-fighters/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// 各类实体的字符和颜色
var (
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePlayerShot = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleEnemyShot  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle      = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
)

// explosionGlyphs 爆炸动画按进度依次使用的字符
var explosionGlyphs = []rune{'.', '*', '#', '@', '*', '+', '.'}

// glyphFor 返回实体在终端中的字符和样式
func glyphFor(kind components.SpriteKind, anim *components.AnimationComponent) (rune, tcell.Style) {
	switch kind {
	case components.SpritePlayer:
		return 'A', stylePlayer
	case components.SpriteEnemy:
		return 'W', styleEnemy
	case components.SpritePlayerLaser:
		return '|', stylePlayerShot
	case components.SpriteEnemyLaser:
		return '!', styleEnemyShot
	case components.SpriteExplosion:
		index := 0
		if anim != nil && anim.FrameCount > 0 {
			index = anim.CurrentFrame * len(explosionGlyphs) / anim.FrameCount
		}
		index = min(max(index, 0), len(explosionGlyphs)-1)
		style := tcell.StyleDefault.Foreground(tcell.ColorOrange)
		return explosionGlyphs[index], style
	default:
		return '?', styleHUD
	}
}

// drawWorld 把模拟中的实体画到终端
// 第 0 行留给 HUD，世界映射到其余的行
func drawWorld(screen tcell.Screen, sim *systems.Simulation) {
	cols, rows := screen.Size()
	if rows < 2 || cols < 1 {
		return
	}
	worldRows := rows - 1
	w, h := sim.Config.Window.Width, sim.Config.Window.Height

	em := sim.EntityManager
	for _, id := range ecs.GetEntitiesWith2[*components.TransformComponent, *components.SpriteComponent](em) {
		tf, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)

		col, row := utils.WorldToCell(tf.X, tf.Y, w, h, cols, worldRows)
		if col < 0 || col >= cols || row < 0 || row >= worldRows {
			continue
		}
		ch, style := glyphFor(sprite.Kind, anim)
		screen.SetContent(col, row+1, ch, nil, style)
	}

	drawHUD(screen, sim.GameState)
}

// drawHUD 在第 0 行绘制剩余敌机和生命
func drawHUD(screen tcell.Screen, gs *game.GameState) {
	cols, _ := screen.Size()
	drawText(screen, 0, 0, styleHUD, gs.EnemiesLeftText())

	lives := gs.LivesLeftText()
	drawText(screen, cols-len(lives), 0, styleHUD, lives)

	if gs.AppState() == game.AppStatePaused {
		drawCentered(screen, 0, styleTitle, "PAUSED (p)")
	}
}

// drawMenu 绘制开始界面；last 为上一局的结果，可为 nil
func drawMenu(screen tcell.Screen, title string, last *game.GameState, best int) {
	_, rows := screen.Size()
	y := rows/2 - 3

	if last == nil {
		drawCentered(screen, y, styleTitle, title)
	} else if last.Won() {
		drawCentered(screen, y, styleTitle, "YOU WIN!")
	} else {
		drawCentered(screen, y, styleEnemy, "GAME OVER")
	}

	if last != nil {
		drawCentered(screen, y+2, styleHUD, fmt.Sprintf("Score: %d   Best: %d", last.Score, best))
	} else if best > 0 {
		drawCentered(screen, y+2, styleHUD, fmt.Sprintf("Best: %d", best))
	}
	drawCentered(screen, y+4, styleHUD, "Enter: start   arrows/a d: move   space: fire")
	drawCentered(screen, y+5, styleHUD, "p: pause   m: sound   q/Esc: quit")
}

func drawCentered(screen tcell.Screen, y int, style tcell.Style, line string) {
	cols, _ := screen.Size()
	drawText(screen, (cols-len(line))/2, y, style, line)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, line string) {
	for i, r := range line {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
