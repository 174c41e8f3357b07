// Package types 定义共享的基础类型
package types

// ZombieType 定义僵尸的类型
type ZombieType int

const (
	// ZombieUnknown 未知僵尸类型
	ZombieUnknown ZombieType = iota

	ZombieBasic       // 普通僵尸（基线，始终可生成）
	ZombieConehead    // 路障僵尸（护甲）
	ZombiePolevaulter // 撑杆跳僵尸（快速）
	ZombieBuckethead  // 铁桶僵尸（重甲）
)

// zombieNames 按枚举顺序排列的配置名
var zombieNames = [...]string{
	ZombieUnknown:     "unknown",
	ZombieBasic:       "basic",
	ZombieConehead:    "conehead",
	ZombiePolevaulter: "polevaulter",
	ZombieBuckethead:  "buckethead",
}

// zombieAliases 网页版里的叫法
var zombieAliases = map[string]ZombieType{
	"cone":   ZombieConehead,
	"bucket": ZombieBuckethead,
	"fast":   ZombiePolevaulter,
}

func (z ZombieType) String() string {
	if z < 0 || int(z) >= len(zombieNames) {
		return zombieNames[ZombieUnknown]
	}
	return zombieNames[z]
}

// ZombieTypeFromString 解析配置名或别名，无法识别时返回 ZombieUnknown
func ZombieTypeFromString(s string) ZombieType {
	for i, name := range zombieNames {
		if i > 0 && name == s {
			return ZombieType(i)
		}
	}
	return zombieAliases[s]
}

// Tier 返回僵尸的强度阶数（1-3），生成表按阶数从高到低检查
func (z ZombieType) Tier() int {
	switch z {
	case ZombieBasic:
		return 1
	case ZombieConehead, ZombiePolevaulter:
		return 2
	case ZombieBuckethead:
		return 3
	default:
		return 0
	}
}

// MarshalText 实现 encoding.TextMarshaler
func (z ZombieType) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (z *ZombieType) UnmarshalText(text []byte) error {
	*z = ZombieTypeFromString(string(text))
	return nil
}
