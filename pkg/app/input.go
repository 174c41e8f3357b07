package app

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/lanedefense/pkg/ecs"
	"github.com/gonewx/lanedefense/pkg/simulation"
	"github.com/gonewx/lanedefense/pkg/types"
	"github.com/gonewx/lanedefense/pkg/utils"
)

// clickKind 点击命中的目标类型
type clickKind int

const (
	clickNone clickKind = iota
	clickCard
	clickTool
	clickPickup
	clickCell
)

// clickTarget 屏幕点击解析结果
type clickTarget struct {
	kind     clickKind
	plant    types.PlantType
	tool     types.ToolType
	pickup   ecs.EntityID
	row, col int
}

// resolveClick 把屏幕坐标解析为点击目标
// 阳光绘制在格子上方，优先于格子本身
func resolveClick(snap *simulation.Snapshot, x, y int) clickTarget {
	for i, pt := range types.AllPlantTypes() {
		if cardRect(i).Contains(x, y) {
			return clickTarget{kind: clickCard, plant: pt}
		}
	}
	for _, b := range toolButtons {
		if b.rect.Contains(x, y) {
			return clickTarget{kind: clickTool, tool: b.tool}
		}
	}

	for _, sun := range snap.Suns {
		cx, cy := pickupCenter(sun.GridRow, sun.GridCol)
		if math.Hypot(float64(x)-cx, float64(y)-cy) <= pickupRadius+4 {
			return clickTarget{kind: clickPickup, pickup: sun.ID}
		}
	}

	if row, col, ok := utils.MouseToGridCoords(x, y); ok {
		return clickTarget{kind: clickCell, row: row, col: col}
	}
	return clickTarget{}
}

// apply 执行点击目标对应的命令，返回是否被接受
func (a *App) apply(t clickTarget) bool {
	switch t.kind {
	case clickCard:
		if !a.sim.SelectPlantType(t.plant) {
			a.notify("That plant is locked on this level.")
			return false
		}
		return true
	case clickTool:
		return a.sim.SelectTool(t.tool)
	case clickPickup:
		return a.sim.CollectPickup(t.pickup)
	case clickCell:
		return a.sim.ClickCell(t.row, t.col)
	}
	return false
}

// handlePointer 处理鼠标/触摸：记录悬停格子，点击时执行命令
func (a *App) handlePointer(in utils.Pointer) {
	a.hoverRow, a.hoverCol, a.hoverValid = utils.MouseToGridCoords(in.X, in.Y)
	if !in.Clicked {
		return
	}
	a.apply(resolveClick(a.sim.Snapshot(), in.X, in.Y))
}

var plantKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// handleKeys 键盘快捷键
func (a *App) handleKeys() {
	for i, key := range plantKeys {
		if inpututil.IsKeyJustPressed(key) && i < len(types.AllPlantTypes()) {
			a.apply(clickTarget{kind: clickCard, plant: types.AllPlantTypes()[i]})
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		a.sim.SelectTool(types.ToolPlant)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		a.sim.SelectTool(types.ToolShovel)
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		a.sim.SelectTool(types.ToolGlove)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		a.sim.SelectTool(types.ToolNone)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if !a.sim.PauseRound() {
			a.sim.ResumeRound()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.sim.StartRound(0)
		a.notify("Restarted.")
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		if snap := a.sim.Snapshot(); snap.Status == simulation.StatusLevelComplete {
			a.startLevel(snap.Level + 1)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		a.settings.ToggleSound()
		a.saveSettings()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		a.settings.SetGameSpeed(a.settings.GetSettings().GameSpeed * 2)
		a.saveSettings()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		a.settings.SetGameSpeed(a.settings.GetSettings().GameSpeed / 2)
		a.saveSettings()
	}
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		a.notify("Settings could not be saved.")
	}
}
