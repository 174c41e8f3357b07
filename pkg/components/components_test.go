package components

import (
	"testing"
	"time"
)

func TestHealthTakeDamage(t *testing.T) {
	tests := []struct {
		name       string
		max        int
		damage     int
		wantHealth int
		wantDead   bool
	}{
		{"普通伤害", 100, 20, 80, false},
		{"恰好致死", 100, 100, 0, true},
		{"溢出伤害不存负值", 100, 130, 0, true},
		{"零伤害", 100, 0, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealth(tt.max)
			dead := h.TakeDamage(tt.damage)
			if dead != tt.wantDead {
				t.Errorf("dead: got %v, want %v", dead, tt.wantDead)
			}
			if h.CurrentHealth != tt.wantHealth {
				t.Errorf("CurrentHealth: got %d, want %d", h.CurrentHealth, tt.wantHealth)
			}
			if h.IsDead() != tt.wantDead {
				t.Errorf("IsDead: got %v, want %v", h.IsDead(), tt.wantDead)
			}
		})
	}
}

func TestPlantAttackReady(t *testing.T) {
	p := PlacedPlant{HealthComponent: NewHealth(300)}
	interval := 1350 * time.Millisecond

	if !p.AttackReady(0, interval) {
		t.Error("plant that never attacked should be ready")
	}

	p.MarkAttack(500 * time.Millisecond)
	if p.AttackReady(1800*time.Millisecond, interval) {
		t.Error("1300ms after last shot should not be ready")
	}
	if !p.AttackReady(1850*time.Millisecond, interval) {
		t.Error("1350ms after last shot should be ready")
	}
}

func TestPlantProduceReady(t *testing.T) {
	p := PlacedPlant{}
	interval := 24 * time.Second

	if !p.ProduceReady(0, interval) {
		t.Error("plant that never produced should be ready")
	}
	p.MarkProduce(time.Second)
	if p.ProduceReady(10*time.Second, interval) {
		t.Error("should not be ready before the interval elapses")
	}
	if !p.ProduceReady(25*time.Second, interval) {
		t.Error("should be ready once the interval elapses")
	}
}

func TestSunPickupExpired(t *testing.T) {
	s := SunPickup{ExpiresAt: 10 * time.Second}
	if s.Expired(9900 * time.Millisecond) {
		t.Error("pickup should still be alive before ExpiresAt")
	}
	if !s.Expired(10 * time.Second) {
		t.Error("pickup should expire at ExpiresAt")
	}
}
