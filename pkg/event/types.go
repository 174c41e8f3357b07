package event

import "github.com/gonewx/lanedefense/pkg/types"

// 单局生命周期事件
const (
	RoundStarted  EventType = "RoundStarted"
	RoundPaused   EventType = "RoundPaused"
	RoundResumed  EventType = "RoundResumed"
	GameOver      EventType = "GameOver"
	LevelComplete EventType = "LevelComplete"
)

// 玩家命令事件
const (
	ToolSelected    EventType = "ToolSelected"
	PlantPlaced     EventType = "PlantPlaced"
	PlantRemoved    EventType = "PlantRemoved" // 铲子移除
	PlantLifted     EventType = "PlantLifted"  // 手套拿起
	PlantDropped    EventType = "PlantDropped" // 手套放下
	PickupCollected EventType = "PickupCollected"
)

// 模拟事件
const (
	ZombieSpawned   EventType = "ZombieSpawned"
	ZombieHit       EventType = "ZombieHit"
	ZombieKilled    EventType = "ZombieKilled"
	ZombieStartEat  EventType = "ZombieStartEat" // 僵尸从行走进入啃食状态
	PlantDestroyed  EventType = "PlantDestroyed" // 植物被吃掉
	ProjectileFired EventType = "ProjectileFired"
	SunProduced     EventType = "SunProduced"
	PickupSpawned   EventType = "PickupSpawned"
	PickupExpired   EventType = "PickupExpired"
)

// RoundData RoundStarted / GameOver 的数据
type RoundData struct {
	Level int
	Kills int
}

// LevelCompleteData 过关事件数据
type LevelCompleteData struct {
	Level            int
	Reward           int // 本次过关奖励的金币
	MaxUnlockedLevel int // 过关后已解锁的最高关卡
}

// PlantData 植物相关事件数据
type PlantData struct {
	Type types.PlantType
	Row  int
	Col  int
}

// ZombieData 僵尸相关事件数据
type ZombieData struct {
	Type   types.ZombieType
	Row    int
	Health int // 事件发生后的剩余生命值
}

// SunData 阳光相关事件数据
type SunData struct {
	Amount int
	Row    int
	Col    int
}
