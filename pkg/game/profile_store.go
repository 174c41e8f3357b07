package game

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/quasilyte/gdata/v2"
)

// ProfileStore 本地玩家档案（显示名、金币、关卡进度）
//
// 模拟核心不依赖此接口：由展示层在收到过关事件后写入
type ProfileStore interface {
	Name() string
	SetName(name string)
	Coins() int
	AddCoins(amount int)
	MaxUnlockedLevel() int
	// SetMaxUnlockedLevel 只会提高进度，低于当前值时忽略
	SetMaxUnlockedLevel(level int)
	Save() error
}

// ProfileData 档案数据结构（YAML 格式，与项目其他配置保持一致）
type ProfileData struct {
	Name             string `yaml:"name"`
	Coins            int    `yaml:"coins"`
	MaxUnlockedLevel int    `yaml:"maxUnlockedLevel"`
}

// DefaultPlayerName 新档案的默认显示名
const DefaultPlayerName = "Player"

// 最长显示名（字符数）
const maxNameLength = 24

func defaultProfile() ProfileData {
	return ProfileData{
		Name:             DefaultPlayerName,
		MaxUnlockedLevel: 1,
	}
}

// profileBase 两种实现共享的内存逻辑
type profileBase struct {
	data ProfileData
}

func (p *profileBase) Name() string { return p.data.Name }

func (p *profileBase) SetName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if r := []rune(name); len(r) > maxNameLength {
		name = string(r[:maxNameLength])
	}
	p.data.Name = name
}

func (p *profileBase) Coins() int { return p.data.Coins }

func (p *profileBase) AddCoins(amount int) {
	if amount <= 0 {
		return
	}
	p.data.Coins += amount
}

func (p *profileBase) MaxUnlockedLevel() int { return p.data.MaxUnlockedLevel }

func (p *profileBase) SetMaxUnlockedLevel(level int) {
	if level > p.data.MaxUnlockedLevel {
		p.data.MaxUnlockedLevel = level
	}
}

// MemoryProfileStore 仅保存在内存中的档案（测试和降级模式使用）
type MemoryProfileStore struct {
	profileBase
}

// NewMemoryProfileStore 创建内存档案
func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profileBase{data: defaultProfile()}}
}

// Save 内存档案无需持久化
func (m *MemoryProfileStore) Save() error { return nil }

// 存储路径常量
const profilesObject = "profiles"

var profileIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,32}$`)

// GdataProfileStore 基于 gdata 的跨平台档案存储
type GdataProfileStore struct {
	profileBase
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	profileID    string
}

// NewGdataProfileStore 打开指定档案
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式）
//   - profileID: 本地档案标识，只允许字母、数字、下划线和连字符
//
// 返回：
//   - *GdataProfileStore: 档案实例；读取失败时使用默认档案
//   - error: profileID 非法时返回错误
func NewGdataProfileStore(gdataManager *gdata.Manager, profileID string) (*GdataProfileStore, error) {
	if !profileIDPattern.MatchString(profileID) {
		return nil, fmt.Errorf("invalid profile id %q", profileID)
	}

	ps := &GdataProfileStore{
		profileBase:  profileBase{data: defaultProfile()},
		gdataManager: gdataManager,
		profileID:    profileID,
	}

	if err := ps.Load(); err != nil {
		// 加载失败不是致命错误，使用默认档案
		log.Printf("[ProfileStore] Warning: Failed to load profile %s: %v (using defaults)", profileID, err)
	}

	return ps, nil
}

// OpenGdata 打开应用的 gdata 存储，失败时返回 nil 并记录警告（降级模式）
func OpenGdata(appName string) *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[ProfileStore] Warning: gdata unavailable: %v (profile will not persist)", err)
		return nil
	}
	return manager
}

// Load 从 gdata 加载档案，没有保存过时保留默认档案
func (ps *GdataProfileStore) Load() error {
	loaded := defaultProfile()
	found, err := loadProp(ps.gdataManager, profilesObject, ps.profileID, &loaded)
	if err != nil || !found {
		return err
	}
	if loaded.MaxUnlockedLevel < 1 {
		loaded.MaxUnlockedLevel = 1
	}
	if strings.TrimSpace(loaded.Name) == "" {
		loaded.Name = DefaultPlayerName
	}

	ps.data = loaded
	log.Printf("[ProfileStore] Profile %s loaded (coins=%d, level=%d)", ps.profileID, ps.data.Coins, ps.data.MaxUnlockedLevel)
	return nil
}

// Save 保存档案到 gdata；降级模式下直接返回 nil
func (ps *GdataProfileStore) Save() error {
	if err := saveProp(ps.gdataManager, profilesObject, ps.profileID, ps.data); err != nil {
		return err
	}
	if ps.gdataManager != nil {
		log.Printf("[ProfileStore] Profile %s saved", ps.profileID)
	}
	return nil
}

// ProfileID 返回档案标识
func (ps *GdataProfileStore) ProfileID() string {
	return ps.profileID
}

// TrackProgress 订阅过关事件：把奖励金币和新解锁的关卡写入档案并立即保存
//
// 返回的订阅句柄可用于取消；保存失败只记录日志
func TrackProgress(d *event.Dispatcher, store ProfileStore) event.Subscription {
	return d.Subscribe(event.LevelComplete, event.ListenerFunc(func(e event.Event) {
		data, ok := e.Data.(event.LevelCompleteData)
		if !ok {
			return
		}
		store.AddCoins(data.Reward)
		store.SetMaxUnlockedLevel(data.MaxUnlockedLevel)
		if err := store.Save(); err != nil {
			log.Printf("[ProfileStore] Warning: Failed to save progress: %v", err)
		}
	}))
}
