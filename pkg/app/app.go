// Package app 提供桌面端（以及移动端）的游戏应用包装器
//
// App 实现 ebiten.Game：每帧按固定步长推进模拟，把鼠标和键盘输入转换为命令，
// 从快照绘制草坪和 HUD，并把模拟事件转换为提示音。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game"
	"github.com/gonewx/lanedefense/pkg/game/sound"
	"github.com/gonewx/lanedefense/pkg/simulation"
	"github.com/gonewx/lanedefense/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "lanedefense"

// sampleRate 音频采样率
const sampleRate = 48000

// frameTime Ebitengine 默认 60 TPS 下每次 Update 的时长
const frameTime = time.Second / 60

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 指定开始的关卡，0 表示档案中最高的已解锁关卡
	Level int
	// ConfigDir 覆盖内置配置的目录，为空则使用内置配置
	ConfigDir string
	// ProfileID 本地档案标识
	ProfileID string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sim      *simulation.Simulation
	profile  game.ProfileStore
	settings *game.SettingsManager
	audio    *sound.AudioManager
	hud      *hud

	window window

	hoverRow, hoverCol int
	hoverValid         bool

	message   string
	messageAt time.Time
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := config.Load(cfg.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	if cfg.ProfileID == "" {
		cfg.ProfileID = "default"
	}
	store := game.OpenGdata(AppName)
	profile, err := game.NewGdataProfileStore(store, cfg.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("档案打开失败: %w", err)
	}
	settings := game.NewSettingsManager(store)

	sim := simulation.New(gameConfig, simulation.WithMaxUnlockedLevel(profile.MaxUnlockedLevel()))
	game.TrackProgress(sim.Events(), profile)

	// 初始化音频上下文
	audioContext := audio.NewContext(sampleRate)
	audioManager := sound.NewAudioManager(audioContext, settings)
	audioManager.Preload()
	audioManager.Listen(sim.Events())
	log.Printf("[App] AudioManager initialized")

	a := &App{
		sim:      sim,
		profile:  profile,
		settings: settings,
		audio:    audioManager,
		hud:      newHUD(gameConfig),
	}
	a.subscribe()
	a.startLevel(cfg.Level)
	return a, nil
}

// subscribe 把终局事件转换为屏幕提示
func (a *App) subscribe() {
	a.sim.Events().Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) {
		a.notify("The zombies ate your brains! Press R to retry.")
	}))
	a.sim.Events().Subscribe(event.LevelComplete, event.ListenerFunc(func(e event.Event) {
		if d, ok := e.Data.(event.LevelCompleteData); ok {
			a.notify(fmt.Sprintf("Level %d complete! +%d coins. Press N for the next level.", d.Level, d.Reward))
		}
	}))
}

// startLevel 开始关卡：0 或超过解锁进度时使用档案中最高的已解锁关卡
func (a *App) startLevel(level int) {
	unlocked := a.profile.MaxUnlockedLevel()
	if level <= 0 || level > unlocked {
		level = unlocked
	}
	started := a.sim.StartRound(level)
	log.Printf("[App] Starting level: %d", started)
	a.notify(fmt.Sprintf("Level %d. Collect sun and plant sunflowers first!", started))
}

func (a *App) notify(msg string) {
	a.message = msg
	a.messageAt = time.Now()
}

// Update 每帧推进一次：窗口、输入、模拟
func (a *App) Update() error {
	a.window.update()
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.window.toggleFullscreen()
	}

	a.handleKeys()
	a.handlePointer(utils.ReadPointer())

	a.sim.Advance(a.settings.ScaleDelta(frameTime))
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.sim.Snapshot()
	drawLawn(screen, snap, a.hoverRow, a.hoverCol, a.hoverValid)
	a.hud.draw(screen, snap, a.profile, a.settings.GetSettings())
	if a.message != "" && time.Since(a.messageAt) < messageTTL {
		a.hud.drawMessage(screen, a.message)
	}
}

// DrawFinalScreen 全屏时用黑边和线性缩放绘制逻辑画面
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 固定逻辑分辨率，缩放交给 Ebitengine
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return utils.ScreenWidth, utils.ScreenHeight
}

// Close 退出前保存设置和档案
func (a *App) Close() error {
	if err := a.settings.Save(); err != nil {
		return err
	}
	return a.profile.Save()
}
