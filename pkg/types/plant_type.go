// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// PlantType 定义植物的类型
type PlantType int

const (
	// PlantUnknown 未知植物类型
	PlantUnknown PlantType = iota
	// PlantSunflower 向日葵（资源生产）
	PlantSunflower
	// PlantPeashooter 豌豆射手
	PlantPeashooter
	// PlantWallnut 坚果墙
	PlantWallnut
	// PlantCactus 仙人掌
	PlantCactus
)

// plantTypeStringMap 植物类型到配置字符串的映射
var plantTypeStringMap = map[PlantType]string{
	PlantSunflower:  "sunflower",
	PlantPeashooter: "peashooter",
	PlantWallnut:    "wallnut",
	PlantCactus:     "cactus",
}

var stringToPlantTypeMap map[string]PlantType

func init() {
	stringToPlantTypeMap = make(map[string]PlantType, len(plantTypeStringMap))
	for pt, s := range plantTypeStringMap {
		stringToPlantTypeMap[s] = pt
	}
}

// String 返回植物类型的配置字符串表示
func (p PlantType) String() string {
	if s, ok := plantTypeStringMap[p]; ok {
		return s
	}
	return "unknown"
}

// PlantTypeFromString 将配置字符串转换为 PlantType
// 未知字符串返回 PlantUnknown
func PlantTypeFromString(s string) PlantType {
	if pt, ok := stringToPlantTypeMap[s]; ok {
		return pt
	}
	return PlantUnknown
}

// AllPlantTypes 按卡片顺序返回所有已知植物类型
func AllPlantTypes() []PlantType {
	return []PlantType{PlantSunflower, PlantPeashooter, PlantWallnut, PlantCactus}
}

// MarshalText 实现 encoding.TextMarshaler，YAML 中以字符串形式出现
func (p PlantType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
// 未知名称解析为 PlantUnknown，由配置校验负责报错
func (p *PlantType) UnmarshalText(text []byte) error {
	*p = PlantTypeFromString(string(text))
	return nil
}
