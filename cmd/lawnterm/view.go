package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game"
	"github.com/gonewx/lanedefense/pkg/simulation"
	"github.com/gonewx/lanedefense/pkg/types"
)

// 草坪在终端中的布局（字符坐标）
const (
	gridX      = 3 // 第 0 列左边界
	gridY      = 4 // 第 0 行上边界
	cellWidth  = 6 // 每列字符宽度
	cellHeight = 2 // 每行字符高度
	messageTTL = 3 * time.Second
)

var (
	styleDefault = tcell.StyleDefault
	styleLawn    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleCursor  = tcell.StyleDefault.Reverse(true)
	styleZombie  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSun     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePea     = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleDim     = tcell.StyleDefault.Dim(true)
	styleAlert   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var plantGlyphs = map[types.PlantType]rune{
	types.PlantSunflower:  'S',
	types.PlantPeashooter: 'P',
	types.PlantWallnut:    'W',
	types.PlantCactus:     'C',
}

var zombieGlyphs = map[types.ZombieType]rune{
	types.ZombieBasic:       'z',
	types.ZombieConehead:    'c',
	types.ZombiePolevaulter: 'f',
	types.ZombieBuckethead:  'b',
}

// view 终端界面：持有光标和提示信息，绘制时只读取快照
type view struct {
	screen   tcell.Screen
	sim      *simulation.Simulation
	profile  game.ProfileStore
	settings *game.SettingsManager

	cursorRow, cursorCol int

	message   string
	messageAt time.Time
}

func newView(screen tcell.Screen, sim *simulation.Simulation, profile game.ProfileStore, settings *game.SettingsManager) *view {
	v := &view{
		screen:    screen,
		sim:       sim,
		profile:   profile,
		settings:  settings,
		cursorRow: config.GridRows / 2,
	}

	// 监听器在 Advance 的调用方（事件循环）中执行
	sim.Events().Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) {
		v.notify("The zombies ate your brains! Press r to retry.")
		v.beep()
	}))
	sim.Events().Subscribe(event.LevelComplete, event.ListenerFunc(func(e event.Event) {
		if d, ok := e.Data.(event.LevelCompleteData); ok {
			v.notify(fmt.Sprintf("Level %d complete! +%d coins. Press n for the next level.", d.Level, d.Reward))
		}
		v.beep()
	}))
	return v
}

// start 开始关卡：0 表示档案中最高的已解锁关卡，超过解锁进度时降到已解锁关卡
func (v *view) start(level int) {
	unlocked := v.profile.MaxUnlockedLevel()
	if level <= 0 || level > unlocked {
		level = unlocked
	}
	started := v.sim.StartRound(level)
	v.notify(fmt.Sprintf("Level %d. Plant sunflowers first!", started))
}

func (v *view) notify(msg string) {
	v.message = msg
	v.messageAt = time.Now()
}

func (v *view) beep() {
	if v.settings != nil && !v.settings.GetSettings().SoundEnabled {
		return
	}
	_ = v.screen.Beep()
}

// advance 按设置中的倍速推进模拟
func (v *view) advance(dt time.Duration) {
	if v.settings != nil {
		dt = v.settings.ScaleDelta(dt)
	}
	v.sim.Advance(dt)
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (v *view) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *view) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.moveCursor(-1, 0)
	case tcell.KeyDown:
		v.moveCursor(1, 0)
	case tcell.KeyLeft:
		v.moveCursor(0, -1)
	case tcell.KeyRight:
		v.moveCursor(0, 1)
	case tcell.KeyEnter:
		if !v.sim.ClickCell(v.cursorRow, v.cursorCol) {
			v.notify("Can't do that here.")
		}
	case tcell.KeyRune:
		return v.handleRune(ev.Rune())
	}
	return true
}

func (v *view) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case '1', '2', '3', '4':
		all := types.AllPlantTypes()
		pt := all[int(r-'1')]
		if !v.sim.SelectPlantType(pt) {
			v.notify(fmt.Sprintf("%s is not available.", pt))
		}
	case 'p':
		v.sim.SelectTool(types.ToolPlant)
	case 's':
		v.sim.SelectTool(types.ToolShovel)
	case 'g':
		v.sim.SelectTool(types.ToolGlove)
	case 'c':
		v.collectAt(v.cursorRow, v.cursorCol)
	case 'a':
		v.collectAll()
	case ' ':
		if !v.sim.PauseRound() {
			v.sim.ResumeRound()
		}
	case 'r':
		v.sim.StartRound(0)
		v.notify("Restarted.")
	case 'n':
		snap := v.sim.Snapshot()
		if snap.Status == simulation.StatusLevelComplete {
			v.start(snap.Level + 1)
		}
	}
	return true
}

func (v *view) moveCursor(dr, dc int) {
	v.cursorRow = min(max(v.cursorRow+dr, 0), config.GridRows-1)
	v.cursorCol = min(max(v.cursorCol+dc, 0), config.GridColumns-1)
}

func (v *view) collectAt(row, col int) {
	for _, sun := range v.sim.Snapshot().Suns {
		if sun.GridRow == row && sun.GridCol == col {
			v.sim.CollectPickup(sun.ID)
		}
	}
}

func (v *view) collectAll() {
	for _, sun := range v.sim.Snapshot().Suns {
		v.sim.CollectPickup(sun.ID)
	}
}

func (v *view) draw() {
	snap := v.sim.Snapshot()
	s := v.screen
	s.Clear()

	v.drawHUD(snap)
	v.drawLawn(snap)

	footerY := gridY + config.GridRows*cellHeight + 1
	if v.message != "" && time.Since(v.messageAt) < messageTTL {
		drawText(s, gridX, footerY, styleDefault, v.message)
	}
	drawText(s, gridX, footerY+1, styleDim,
		"1-4 cards  p/s/g tools  arrows+Enter use  c/a collect  space pause  r restart  q quit")

	s.Show()
}

func (v *view) drawHUD(snap *simulation.Snapshot) {
	s := v.screen
	status := snap.Status.String()
	if snap.Paused {
		status = "paused"
	}
	header := fmt.Sprintf("%s  Level %d/%d  Sun %d  Kills %d/%d  Coins %d  Time %v",
		v.profile.Name(), snap.Level, snap.MaxUnlockedLevel, snap.Sun, snap.Kills, snap.KillQuota,
		v.profile.Coins(), snap.Now.Truncate(time.Second))
	drawText(s, gridX, 0, styleDefault, header)

	statusStyle := styleDefault
	if snap.Status == simulation.StatusGameOver {
		statusStyle = styleAlert
	}
	x := drawText(s, gridX, 1, statusStyle, "["+status+"]")
	tool := "Tool: " + snap.Tool.String()
	if snap.Tool == types.ToolGlove && !snap.GloveReady() {
		tool += fmt.Sprintf(" (%.0fs)", snap.GloveCooldown.Seconds())
	}
	if snap.Held != nil {
		tool += " holding " + snap.Held.Plant.Type.String()
	}
	drawText(s, x+2, 1, styleDefault, tool)

	cx := gridX
	catalog := v.sim.Config().Catalog
	for i, pt := range types.AllPlantTypes() {
		def, ok := catalog.Plant(pt)
		if !ok {
			continue
		}
		style := styleDefault
		label := fmt.Sprintf("%d:%s %d", i+1, def.Name, def.Cost)
		switch {
		case def.UnlockLevel > snap.Level:
			style = styleDim
			label = fmt.Sprintf("%d:locked", i+1)
		case !snap.PlantReady(pt):
			style = styleDim
			label += fmt.Sprintf(" (%.0fs)", snap.Cooldowns[pt].Seconds())
		case snap.Sun < def.Cost:
			style = styleDim
		}
		if snap.Tool == types.ToolPlant && snap.SelectedPlant == pt {
			style = style.Reverse(true)
		}
		cx = drawText(s, cx, 2, style, label) + 2
	}
}

func (v *view) drawLawn(snap *simulation.Snapshot) {
	s := v.screen

	for row := range config.GridRows {
		y := gridY + row*cellHeight
		s.SetContent(gridX-1, y, '|', nil, styleAlert)
		for col := range config.GridColumns {
			x := gridX + col*cellWidth
			style := styleLawn
			if row == v.cursorRow && col == v.cursorCol {
				style = styleCursor
			}
			drawText(s, x, y, style, "[    ]")
		}
	}

	for _, p := range snap.Plants {
		x, y := cellOrigin(p.GridRow, p.GridCol)
		glyph := plantGlyphs[p.Type]
		s.SetContent(x+2, y, glyph, nil, v.cellStyle(p.GridRow, p.GridCol))
	}

	for _, sun := range snap.Suns {
		x, y := cellOrigin(sun.GridRow, sun.GridCol)
		glyph := '*'
		if sun.IsBonus {
			glyph = '@'
		}
		s.SetContent(x+3, y, glyph, nil, styleSun)
	}

	for _, p := range snap.Projectiles {
		s.SetContent(laneX(p.Position), gridY+p.Row*cellHeight+1, 'o', nil, stylePea)
	}

	for _, z := range snap.Zombies {
		glyph, ok := zombieGlyphs[z.Type]
		if !ok {
			glyph = 'z'
		}
		style := styleZombie
		if z.IsEating {
			style = style.Reverse(true)
		}
		s.SetContent(laneX(z.Position), gridY+z.Row*cellHeight+1, glyph, nil, style)
	}
}

func (v *view) cellStyle(row, col int) tcell.Style {
	if row == v.cursorRow && col == v.cursorCol {
		return styleCursor
	}
	return styleDefault
}

func cellOrigin(row, col int) (int, int) {
	return gridX + col*cellWidth, gridY + row*cellHeight
}

// laneX 连续列坐标转换为字符列
func laneX(pos float64) int {
	pos = min(max(pos, 0), float64(config.GridColumns))
	return gridX + int(pos*cellWidth)
}

// drawText 绘制单行文本，返回结束位置的 x 坐标
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
