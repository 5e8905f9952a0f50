package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// keyHold 终端没有按键抬起事件，按下后在这段时间内视为一直按住
// 终端的自动重复会不断刷新这个窗口
const keyHold = 250 * time.Millisecond

// terminalInput 把终端按键事件转换成 systems.PlayerInput
type terminalInput struct {
	axis      float64
	axisUntil time.Time
	fireUntil time.Time
	now       func() time.Time
}

func newTerminalInput() *terminalInput {
	return &terminalInput{now: time.Now}
}

// MoveAxis 返回水平移动方向
func (in *terminalInput) MoveAxis() float64 {
	if in.now().Before(in.axisUntil) {
		return in.axis
	}
	return 0
}

// FirePressed 返回开火键是否视为按下
func (in *terminalInput) FirePressed() bool {
	return in.now().Before(in.fireUntil)
}

// handleKey 记录移动和开火按键，返回事件是否被消费
func (in *terminalInput) handleKey(ev *tcell.EventKey) bool {
	now := in.now()

	switch ev.Key() {
	case tcell.KeyLeft:
		in.hold(-1, now)
		return true
	case tcell.KeyRight:
		in.hold(1, now)
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			in.hold(-1, now)
			return true
		case 'd', 'D', 'l':
			in.hold(1, now)
			return true
		case ' ':
			in.fireUntil = now.Add(keyHold)
			return true
		}
	}
	return false
}

// hold 开始或延续一次移动；反方向按键立即生效
func (in *terminalInput) hold(axis float64, now time.Time) {
	in.axis = axis
	in.axisUntil = now.Add(keyHold)
}

// reset 清除按住状态，用于暂停和新开一局
func (in *terminalInput) reset() {
	in.axis = 0
	in.axisUntil = time.Time{}
	in.fireUntil = time.Time{}
}
