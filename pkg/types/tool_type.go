package types

// ToolType 玩家当前手持的工具
type ToolType int

const (
	// ToolNone 未选择工具，所有格子点击都被忽略
	ToolNone ToolType = iota
	// ToolPlant 种植模式（默认）
	ToolPlant
	// ToolShovel 铲子：移除植物
	ToolShovel
	// ToolGlove 手套：搬运植物
	ToolGlove
)

// String 返回工具名称
func (t ToolType) String() string {
	switch t {
	case ToolPlant:
		return "plant"
	case ToolShovel:
		return "shovel"
	case ToolGlove:
		return "glove"
	default:
		return "none"
	}
}

// ToolTypeFromString 将名称转换为 ToolType，未知名称返回 ToolNone
func ToolTypeFromString(s string) ToolType {
	switch s {
	case "plant":
		return ToolPlant
	case "shovel":
		return ToolShovel
	case "glove":
		return ToolGlove
	default:
		return ToolNone
	}
}
