package game

import (
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// GameSettings 全局设置，不属于任何档案
type GameSettings struct {
	SoundEnabled bool    `yaml:"soundEnabled"`
	SoundVolume  float64 `yaml:"soundVolume"` // 0 ~ 1
	// GameSpeed 模拟倍速，1 为实时
	GameSpeed float64 `yaml:"gameSpeed"`
}

// 取值范围
const (
	minGameSpeed = 0.25
	maxGameSpeed = 4.0
)

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundEnabled: true,
		SoundVolume:  0.8,
		GameSpeed:    1.0,
	}
}

// normalize 把越界的字段收回合法范围
func (s *GameSettings) normalize() {
	s.SoundVolume = clamp(s.SoundVolume, 0, 1)
	s.GameSpeed = clamp(s.GameSpeed, minGameSpeed, maxGameSpeed)
}

// SettingsManager 持有当前设置，可选地通过 gdata 持久化
//
// 所有 Set 方法只改内存，调用 Save 才写盘
type SettingsManager struct {
	store    *gdata.Manager // nil 表示仅内存
	settings *GameSettings
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建设置管理器并尝试读取已保存的设置，store 可为 nil
func NewSettingsManager(store *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{store: store, settings: DefaultSettings()}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 重新读取设置；没有保存过或读取失败时回到默认值
func (sm *SettingsManager) Load() error {
	loaded := DefaultSettings()
	found, err := loadProp(sm.store, settingsObject, settingsProperty, loaded)
	if err != nil || !found {
		sm.settings = DefaultSettings()
		return err
	}
	loaded.normalize()
	sm.settings = loaded
	log.Printf("[SettingsManager] Loaded (sound=%v volume=%.2f speed=%.2f)",
		loaded.SoundEnabled, loaded.SoundVolume, loaded.GameSpeed)
	return nil
}

// Save 持久化当前设置
func (sm *SettingsManager) Save() error {
	return saveProp(sm.store, settingsObject, settingsProperty, sm.settings)
}

// GetSettings 当前设置（只读使用）
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clamp(volume, 0, 1)
}

func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// ToggleSound 切换音效开关并返回新状态
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	return sm.settings.SoundEnabled
}

// SetGameSpeed 设置模拟倍速，限制在 0.25 ~ 4
func (sm *SettingsManager) SetGameSpeed(speed float64) {
	sm.settings.GameSpeed = clamp(speed, minGameSpeed, maxGameSpeed)
}

// ScaleDelta 按当前倍速换算一帧要推进的模拟时间
func (sm *SettingsManager) ScaleDelta(dt time.Duration) time.Duration {
	return time.Duration(float64(dt) * sm.settings.GameSpeed)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
