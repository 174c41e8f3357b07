package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/lanedefense/pkg/utils"
)

// 退出全屏后等待窗口管理器的帧数
const restoreDelayFrames = 3

// window F11 全屏切换
//
// 退出全屏时窗口尺寸要过几帧才能恢复，否则会被窗口管理器覆盖
type window struct {
	restoreIn int // >0 时倒数，到 0 时恢复逻辑尺寸
}

func (w *window) toggleFullscreen() {
	if !ebiten.IsFullscreen() {
		ebiten.SetFullscreen(true)
		return
	}
	ebiten.SetFullscreen(false)
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	w.restoreIn = restoreDelayFrames
}

// update 每帧调用一次
func (w *window) update() {
	if w.restoreIn == 0 {
		return
	}
	w.restoreIn--
	if w.restoreIn == 0 {
		ebiten.SetWindowSize(utils.ScreenWidth, utils.ScreenHeight)
		log.Printf("[App] Window restored to %dx%d", utils.ScreenWidth, utils.ScreenHeight)
	}
}
