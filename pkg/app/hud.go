package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/game"
	"github.com/gonewx/lanedefense/pkg/simulation"
	"github.com/gonewx/lanedefense/pkg/types"
	"github.com/gonewx/lanedefense/pkg/utils"
)

// messageTTL 提示信息显示时长
const messageTTL = 4 * time.Second

// HUD 布局
const (
	cardX      = 120.0
	cardY      = 8.0
	cardWidth  = 80.0
	cardHeight = 80.0
	cardGap    = 8.0
	lineHeight = 16.0
)

var (
	colorPanel    = color.RGBA{R: 90, G: 60, B: 40, A: 255}
	colorCard     = color.RGBA{R: 230, G: 220, B: 170, A: 255}
	colorDisabled = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	colorSelected = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorText     = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	colorTextHUD  = color.RGBA{R: 250, G: 245, B: 220, A: 255}
)

type toolButton struct {
	tool  types.ToolType
	label string
	rect  utils.Rect
}

var toolButtons = []toolButton{
	{types.ToolShovel, "Shovel (S)", utils.Rect{X: 490, Y: cardY, W: 80, H: cardHeight}},
	{types.ToolGlove, "Glove (G)", utils.Rect{X: 578, Y: cardY, W: 80, H: cardHeight}},
}

// cardRect 第 i 张植物卡片的区域
func cardRect(i int) utils.Rect {
	return utils.Rect{X: cardX + float64(i)*(cardWidth+cardGap), Y: cardY, W: cardWidth, H: cardHeight}
}

// hud 顶部状态栏：阳光、卡片、工具、关卡信息
type hud struct {
	face    text.Face
	catalog *config.Catalog
}

func newHUD(cfg *config.GameConfig) *hud {
	return &hud{
		face:    text.NewGoXFace(basicfont.Face7x13),
		catalog: cfg.Catalog,
	}
}

func (h *hud) text(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}

func (h *hud) draw(screen *ebiten.Image, snap *simulation.Snapshot, profile game.ProfileStore, settings *game.GameSettings) {
	vector.DrawFilledRect(screen, 0, 0, utils.ScreenWidth, cardY*2+cardHeight, colorPanel, false)

	// 阳光
	vector.DrawFilledRect(screen, 10, cardY, 100, cardHeight, colorCard, false)
	vector.DrawFilledCircle(screen, 60, cardY+28, pickupRadius, colorSun, true)
	h.text(screen, fmt.Sprintf("%d", snap.Sun), 40, cardY+56, colorText)

	for i, pt := range types.AllPlantTypes() {
		def, ok := h.catalog.Plant(pt)
		if !ok {
			continue
		}
		h.drawCard(screen, cardRect(i), i, def, snap)
	}

	for _, b := range toolButtons {
		r := b.rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorCard, false)
		h.text(screen, b.label, r.X+6, r.Y+8, colorText)
		if b.tool == types.ToolGlove && !snap.GloveReady() {
			h.text(screen, fmt.Sprintf("%.0fs", snap.GloveCooldown.Seconds()), r.X+6, r.Y+8+lineHeight, colorText)
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorDisabled, false)
		}
		if snap.Tool == b.tool {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 3, colorSelected, false)
		}
	}

	status := snap.Status.String()
	if snap.Paused {
		status = "paused"
	}
	lines := []string{
		fmt.Sprintf("%s  coins %d", profile.Name(), profile.Coins()),
		fmt.Sprintf("Level %d/%d  [%s]", snap.Level, snap.MaxUnlockedLevel, status),
		fmt.Sprintf("Kills %d/%d  %v", snap.Kills, snap.KillQuota, snap.Now.Truncate(time.Second)),
		fmt.Sprintf("Speed x%.2g  Sound %s", settings.GameSpeed, onOff(settings.SoundEnabled)),
	}
	if snap.Held != nil {
		lines = append(lines, "Holding "+snap.Held.Plant.Type.String())
	}
	for i, line := range lines {
		h.text(screen, line, 676, cardY+float64(i)*lineHeight, colorTextHUD)
	}

	h.text(screen, "1-4 cards  P/S/G tools  Space pause  R restart  N next  M sound  +/- speed  F11 fullscreen",
		utils.GridStartX, utils.ScreenHeight-16, colorTextHUD)
}

func (h *hud) drawCard(screen *ebiten.Image, r utils.Rect, i int, def *config.PlantDef, snap *simulation.Snapshot) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorCard, false)
	if c, ok := plantColors[def.Type]; ok {
		vector.DrawFilledCircle(screen, float32(r.X+r.W/2), float32(r.Y+30), 18, c, true)
	}
	h.text(screen, fmt.Sprintf("%d %s", i+1, def.Name), r.X+4, r.Y+2, colorText)
	h.text(screen, fmt.Sprintf("%d", def.Cost), r.X+4, r.Y+r.H-lineHeight, colorText)

	locked := def.UnlockLevel > snap.Level
	if locked || !snap.PlantReady(def.Type) || snap.Sun < def.Cost {
		// 冷却进度从上往下减少
		height := r.H
		if !locked {
			if remaining := snap.Cooldowns[def.Type]; remaining > 0 && def.Cooldown() > 0 {
				height = r.H * remaining.Seconds() / def.Cooldown().Seconds()
			}
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(height), colorDisabled, false)
	}
	if locked {
		h.text(screen, "locked", r.X+18, r.Y+r.H/2, colorTextHUD)
	}
	if snap.Tool == types.ToolPlant && snap.SelectedPlant == def.Type {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 3, colorSelected, false)
	}
}

// drawMessage 在草坪下方绘制提示信息（过长时自动换行）
func (h *hud) drawMessage(screen *ebiten.Image, msg string) {
	y := utils.GridEndY() + 6
	for _, line := range utils.WrapText(msg, h.face, utils.GridEndX()-utils.GridStartX) {
		h.text(screen, line, utils.GridStartX, y, colorTextHUD)
		y += lineHeight
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
