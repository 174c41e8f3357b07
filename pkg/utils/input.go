package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer 本帧的指针（鼠标或第一根手指）
type Pointer struct {
	X, Y int
	// Clicked 本帧刚按下
	Clicked bool
	// Touch 来自触摸屏；抬起手指后没有悬停位置
	Touch bool
}

// ReadPointer 读取本帧指针，触摸优先于鼠标
func ReadPointer() Pointer {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return Pointer{X: x, Y: y, Clicked: true, Touch: true}
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return Pointer{X: x, Y: y, Touch: true}
	}

	x, y := ebiten.CursorPosition()
	return Pointer{
		X:       x,
		Y:       y,
		Clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// Rect 屏幕矩形（左上闭、右下开）
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y int) bool {
	px, py := float64(x), float64(y)
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Center 矩形中心（取整）
func (r Rect) Center() (int, int) {
	return int(r.X + r.W/2), int(r.Y + r.H/2)
}
