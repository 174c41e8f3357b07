package components

// HealthComponent 存储实体的生命值信息
// 用于僵尸、植物等可被攻击的实体
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

// NewHealth 创建满血的生命值组件
func NewHealth(max int) HealthComponent {
	return HealthComponent{CurrentHealth: max, MaxHealth: max}
}

// TakeDamage 扣除生命值，返回扣除后是否死亡（<= 0）
// 存储值不会低于 0
func (h *HealthComponent) TakeDamage(amount int) bool {
	h.CurrentHealth -= amount
	if h.CurrentHealth < 0 {
		h.CurrentHealth = 0
	}
	return h.CurrentHealth <= 0
}

// IsDead 生命值是否已耗尽
func (h HealthComponent) IsDead() bool {
	return h.CurrentHealth <= 0
}
