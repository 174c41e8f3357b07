package systems

import (
	"testing"
	"time"

	"github.com/gonewx/lanedefense/pkg/event"
)

func TestSunSpawnNextInterval(t *testing.T) {
	f := newFixture(t, 1)

	tests := []struct {
		draw int
		want time.Duration
	}{
		{0, 5000 * time.Millisecond},
		{2500, 7500 * time.Millisecond},
		{5000, 10000 * time.Millisecond},
	}
	for _, tt := range tests {
		ss := NewSunSpawnSystem(f.gs, f.cfg, &fakeRand{ints: []int{tt.draw}}, nil)
		if got := ss.NextInterval(); got != tt.want {
			t.Errorf("NextInterval() with draw %d = %v, want %v", tt.draw, got, tt.want)
		}
	}
}

func TestSunSpawnValue(t *testing.T) {
	tests := []struct {
		name      string
		draw      float64
		wantValue int
		wantBonus bool
	}{
		{"普通阳光", 0.5, 25, false},
		{"大阳光", 0.05, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 1)
			rng := &fakeRand{ints: []int{2, 7}, floats: []float64{tt.draw}}
			ss := NewSunSpawnSystem(f.gs, f.cfg, rng, f.sink)

			if !ss.Spawn() {
				t.Fatal("Spawn() = false")
			}
			sun := f.world().Suns[0]
			if sun.GridRow != 2 || sun.GridCol != 7 {
				t.Errorf("sun at (%d,%d), want (2,7)", sun.GridRow, sun.GridCol)
			}
			if sun.Value != tt.wantValue || sun.IsBonus != tt.wantBonus {
				t.Errorf("sun value=%d bonus=%v, want %d %v", sun.Value, sun.IsBonus, tt.wantValue, tt.wantBonus)
			}
			if sun.ExpiresAt != 10*time.Second {
				t.Errorf("ExpiresAt = %v, want 10s", sun.ExpiresAt)
			}
		})
	}
}

func TestSunSweepExpiredIsIdempotent(t *testing.T) {
	f := newFixture(t, 1)
	ss := NewSunSpawnSystem(f.gs, f.cfg, &fakeRand{floats: []float64{0.5}}, f.sink)
	ss.Spawn()
	sunID := f.world().Suns[0].ID

	f.world().Now = 9999 * time.Millisecond
	if n := ss.SweepExpired(); n != 0 {
		t.Errorf("swept %d before expiry", n)
	}

	f.world().Now = 10 * time.Second
	if n := ss.SweepExpired(); n != 1 {
		t.Errorf("swept %d, want 1", n)
	}
	if n := ss.SweepExpired(); n != 0 {
		t.Errorf("second sweep removed %d, want 0", n)
	}
	if f.sink.count(event.PickupExpired) != 1 {
		t.Errorf("PickupExpired emitted %d times, want 1", f.sink.count(event.PickupExpired))
	}

	// 过期后收集是无操作
	sun := f.world().Sun
	if f.collect.CollectPickup(sunID) {
		t.Error("collecting an expired pickup should be rejected")
	}
	if f.world().Sun != sun {
		t.Error("sun changed after collecting expired pickup")
	}
}
