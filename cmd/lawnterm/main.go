// lawnterm 终端版草坪防御
//
// 按键：
//
//	1-4      选择植物卡片        p/s/g  种植/铲子/手套
//	方向键   移动光标            Enter  在光标处使用当前工具
//	c        收集光标处阳光      a      收集全部阳光
//	空格     暂停/继续           r      重开本关
//	n        下一关（过关后）    q/Esc  退出
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/game"
	"github.com/gonewx/lanedefense/pkg/simulation"
)

const appName = "lanedefense"

func main() {
	level := flag.Int("level", 0, "Level to start (0 = highest unlocked)")
	configDir := flag.String("config", "", "Directory with config overrides")
	profileID := flag.String("profile", "default", "Local profile id")
	logFile := flag.String("log", "", "Write logs to this file (the terminal is owned by the UI)")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	store := game.OpenGdata(appName)
	profile, err := game.NewGdataProfileStore(store, *profileID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	settings := game.NewSettingsManager(store)

	sim := simulation.New(cfg, simulation.WithMaxUnlockedLevel(profile.MaxUnlockedLevel()))
	game.TrackProgress(sim.Events(), profile)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	v := newView(screen, sim, profile, settings)
	v.start(*level)
	run(v, screen)
}

// run 事件循环：按键立即处理，定时器驱动模拟和重绘
func run(v *view, screen tcell.Screen) {
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := pollEvents(screen, done, 100)

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !v.handleEvent(ev) {
				return
			}
			v.draw()

		case now := <-ticker.C:
			v.advance(now.Sub(last))
			last = now
			v.draw()
		}
	}
}

// pollEvents 在后台读取终端事件
//
// done 关闭后不再投递；屏幕 Fini 后 PollEvent 返回 nil，goroutine 退出并关闭返回的通道
func pollEvents(screen tcell.Screen, done <-chan struct{}, buffer int) <-chan tcell.Event {
	out := make(chan tcell.Event, buffer)
	go func() {
		defer close(out)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case out <- ev:
			case <-done:
				return
			}
		}
	}()
	return out
}
