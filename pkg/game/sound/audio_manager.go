// Package sound 把模拟事件播放为提示音
package sound

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	toneaudio "github.com/gonewx/lanedefense/internal/audio"
	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game"
)

// minCueGap 同一提示音两次播放的最小间隔（射击和命中每秒可能触发很多次）
const minCueGap = 60 * time.Millisecond

// AudioManager 提示音管理器
// 职责：
//   - 把模拟事件映射为提示音并播放
//   - 按需合成并缓存每个提示音的播放器
//   - 遵从 SettingsManager 的开关和音量
type AudioManager struct {
	context         *audio.Context // 可为 nil（无音频设备时的降级模式）
	settingsManager *game.SettingsManager
	players         map[event.Cue]*audio.Player
	lastPlayed      map[event.Cue]time.Time
	now             func() time.Time
}

// NewAudioManager 创建提示音管理器
//
// 参数：
//   - ctx: Ebitengine 音频上下文，可为 nil（只记录不播放）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *game.SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		players:         make(map[event.Cue]*audio.Player),
		lastPlayed:      make(map[event.Cue]time.Time),
		now:             time.Now,
	}
}

// Listen 订阅分发器上的所有事件，有对应提示音的事件触发播放
func (am *AudioManager) Listen(d *event.Dispatcher) event.Subscription {
	return d.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		if cue, ok := event.CueFor(e.Type); ok {
			am.PlayCue(cue)
		}
	}))
}

// PlayCue 播放提示音
//
// 返回：
//   - bool: 是否实际播放（音效关闭、无音频设备或节流时为 false）
func (am *AudioManager) PlayCue(cue event.Cue) bool {
	if !am.soundEnabled() {
		return false
	}

	now := am.now()
	if last, ok := am.lastPlayed[cue]; ok && now.Sub(last) < minCueGap {
		return false
	}

	player := am.getPlayer(cue)
	if player == nil {
		return false
	}
	am.lastPlayed[cue] = now

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind cue %s: %v", cue, err)
	}
	player.Play()
	return true
}

// Preload 预先合成所有提示音，避免首次播放时的延迟
func (am *AudioManager) Preload() {
	for _, cue := range event.AllCues() {
		am.getPlayer(cue)
	}
	log.Printf("[AudioManager] Preloaded %d cues", len(am.players))
}

func (am *AudioManager) soundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// getPlayer 获取或合成提示音播放器
func (am *AudioManager) getPlayer(cue event.Cue) *audio.Player {
	if player, exists := am.players[cue]; exists {
		return player
	}
	if am.context == nil {
		return nil
	}

	tones := event.Tones(cue)
	if len(tones) == 0 {
		log.Printf("[AudioManager] Warning: Unknown cue: %s", cue)
		return nil
	}
	stream, err := toneaudio.Synthesize(tones, am.context.SampleRate())
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to synthesize cue %s: %v", cue, err)
		return nil
	}

	player := am.context.NewPlayerFromBytes(stream.Bytes())
	am.players[cue] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
