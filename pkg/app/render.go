package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/lanedefense/pkg/components"
	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/simulation"
	"github.com/gonewx/lanedefense/pkg/types"
	"github.com/gonewx/lanedefense/pkg/utils"
)

const (
	pickupRadius     = 18
	plantRadius      = 28
	projectileRadius = 6
	zombieWidth      = 34
	zombieHeight     = 64
)

var (
	colorBackground = color.RGBA{R: 60, G: 40, B: 30, A: 255}
	colorLawnLight  = color.RGBA{R: 110, G: 190, B: 80, A: 255}
	colorLawnDark   = color.RGBA{R: 90, G: 170, B: 65, A: 255}
	colorHover      = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	colorHome       = color.RGBA{R: 180, G: 40, B: 40, A: 255}
	colorSun        = color.RGBA{R: 255, G: 220, B: 40, A: 255}
	colorBonusSun   = color.RGBA{R: 255, G: 170, B: 20, A: 255}
	colorPea        = color.RGBA{R: 120, G: 230, B: 60, A: 255}
	colorSpike      = color.RGBA{R: 30, G: 120, B: 40, A: 255}
	colorHealthBack = color.RGBA{R: 40, G: 40, B: 40, A: 200}
	colorHealth     = color.RGBA{R: 220, G: 50, B: 50, A: 255}
)

var plantColors = map[types.PlantType]color.RGBA{
	types.PlantSunflower:  {R: 250, G: 200, B: 30, A: 255},
	types.PlantPeashooter: {R: 40, G: 150, B: 40, A: 255},
	types.PlantWallnut:    {R: 160, G: 110, B: 60, A: 255},
	types.PlantCactus:     {R: 30, G: 110, B: 60, A: 255},
}

var zombieColors = map[types.ZombieType]color.RGBA{
	types.ZombieBasic:       {R: 120, G: 130, B: 110, A: 255},
	types.ZombieConehead:    {R: 230, G: 130, B: 40, A: 255},
	types.ZombiePolevaulter: {R: 150, G: 90, B: 160, A: 255},
	types.ZombieBuckethead:  {R: 150, G: 150, B: 170, A: 255},
}

// pickupCenter 阳光绘制在格子右上角
func pickupCenter(row, col int) (float64, float64) {
	cx, cy := utils.GridToScreenCoords(row, col)
	return cx + 14, cy - 18
}

// drawLawn 绘制草坪、植物、僵尸、子弹和阳光
func drawLawn(screen *ebiten.Image, snap *simulation.Snapshot, hoverRow, hoverCol int, hoverValid bool) {
	screen.Fill(colorBackground)

	for row := range config.GridRows {
		for col := range config.GridColumns {
			c := colorLawnLight
			if (row+col)%2 == 1 {
				c = colorLawnDark
			}
			x := float32(utils.GridStartX + float64(col)*utils.CellWidth)
			y := float32(utils.GridStartY + float64(row)*utils.CellHeight)
			vector.DrawFilledRect(screen, x, y, utils.CellWidth, utils.CellHeight, c, false)
		}
	}
	if hoverValid {
		x := float32(utils.GridStartX + float64(hoverCol)*utils.CellWidth)
		y := float32(utils.GridStartY + float64(hoverRow)*utils.CellHeight)
		vector.DrawFilledRect(screen, x, y, utils.CellWidth, utils.CellHeight, colorHover, false)
	}
	vector.StrokeLine(screen, utils.GridStartX, utils.GridStartY, utils.GridStartX, float32(utils.GridEndY()), 3, colorHome, false)

	for i := range snap.Plants {
		drawPlant(screen, &snap.Plants[i], false)
	}
	if snap.Held != nil && hoverValid {
		// 手套拿着的植物跟随悬停格子，半透明显示
		held := snap.Held.Plant
		held.GridRow, held.GridCol = hoverRow, hoverCol
		drawPlant(screen, &held, true)
	}
	for _, p := range snap.Projectiles {
		c := colorPea
		if p.Source == types.PlantCactus {
			c = colorSpike
		}
		vector.DrawFilledCircle(screen, float32(utils.LaneToScreenX(p.Position)), float32(utils.RowCenterY(p.Row)-10), projectileRadius, c, true)
	}
	for i := range snap.Zombies {
		drawZombie(screen, &snap.Zombies[i])
	}
	for _, sun := range snap.Suns {
		cx, cy := pickupCenter(sun.GridRow, sun.GridCol)
		c, r := colorSun, float32(pickupRadius)
		if sun.IsBonus {
			c, r = colorBonusSun, pickupRadius+6
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, c, true)
	}
}

func drawPlant(screen *ebiten.Image, p *components.PlacedPlant, ghost bool) {
	cx, cy := utils.GridToScreenCoords(p.GridRow, p.GridCol)
	c, ok := plantColors[p.Type]
	if !ok {
		c = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	}
	if ghost {
		c.A = 120
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), plantRadius, c, true)
	if !ghost {
		drawHealthBar(screen, cx-plantRadius, cy+plantRadius+4, plantRadius*2, p.CurrentHealth, p.MaxHealth)
	}
}

func drawZombie(screen *ebiten.Image, z *components.ActiveZombie) {
	x := utils.LaneToScreenX(z.Position)
	y := utils.RowCenterY(z.Row) - zombieHeight/2
	c, ok := zombieColors[z.Type]
	if !ok {
		c = zombieColors[types.ZombieBasic]
	}
	vector.DrawFilledRect(screen, float32(x-zombieWidth/2), float32(y), zombieWidth, zombieHeight, c, false)
	if z.IsEating {
		vector.StrokeRect(screen, float32(x-zombieWidth/2), float32(y), zombieWidth, zombieHeight, 2, colorHome, false)
	}
	drawHealthBar(screen, x-zombieWidth/2, y-8, zombieWidth, z.CurrentHealth, z.MaxHealth)
}

func drawHealthBar(screen *ebiten.Image, x, y, width float64, health, maxHealth int) {
	if maxHealth <= 0 || health >= maxHealth {
		return
	}
	ratio := float32(max(health, 0)) / float32(maxHealth)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), 4, colorHealthBack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width)*ratio, 4, colorHealth, false)
}
