// Package input 读取桌面端的键盘、鼠标和触摸输入
package input

import (
	"github.com/Norlock/space-fighters/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard 桌面端的玩家输入
// 左右方向键或 A/D 移动，空格开火
type Keyboard struct{}

// MoveAxis 返回水平移动方向
func (Keyboard) MoveAxis() float64 {
	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	return utils.AxisFromKeys(left, right)
}

// FirePressed 返回开火键是否按下
func (Keyboard) FirePressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeySpace)
}

// IsStartJustPressed 检查是否刚按下开始键（回车，或鼠标点击/触摸）
func IsStartJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// IsPauseJustPressed 检查是否刚按下暂停键（P 或 Esc）
func IsPauseJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsMuteJustPressed 检查是否刚按下静音键（M）
func IsMuteJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}

// IsFullscreenJustPressed 检查是否刚按下全屏切换键（F11）
func IsFullscreenJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF11)
}
