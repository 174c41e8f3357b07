package event

import (
	"testing"
	"time"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcherDeliversByType(t *testing.T) {
	d := NewDispatcher()
	kills := &recorder{}
	all := &recorder{}
	d.Subscribe(ZombieKilled, kills)
	d.SubscribeAll(all)

	d.Dispatch(Event{Type: ZombieKilled})
	d.Dispatch(Event{Type: PlantPlaced})

	if len(kills.got) != 1 {
		t.Errorf("typed listener got %d events, want 1", len(kills.got))
	}
	if len(all.got) != 2 {
		t.Errorf("catch-all listener got %d events, want 2", len(all.got))
	}
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	sub := d.Subscribe(GameOver, r)
	d.Unsubscribe(sub)
	d.Unsubscribe(sub) // 重复取消不应出错

	d.Dispatch(Event{Type: GameOver})
	if len(r.got) != 0 {
		t.Errorf("unsubscribed listener got %d events", len(r.got))
	}

	allSub := d.SubscribeAll(r)
	d.Unsubscribe(allSub)
	d.Dispatch(Event{Type: GameOver})
	if len(r.got) != 0 {
		t.Errorf("unsubscribed catch-all listener got %d events", len(r.got))
	}
}

func TestDispatcherRecoversFromPanic(t *testing.T) {
	d := NewDispatcher()
	after := &recorder{}
	d.Subscribe(ZombieHit, ListenerFunc(func(Event) { panic("audio device gone") }))
	d.Subscribe(ZombieHit, after)

	d.DispatchAll([]Event{{Type: ZombieHit}, {Type: ZombieHit}})

	if len(after.got) != 2 {
		t.Errorf("listener after panicking one got %d events, want 2", len(after.got))
	}
}

func TestCueTable(t *testing.T) {
	for _, c := range AllCues() {
		tones := Tones(c)
		if len(tones) == 0 {
			t.Errorf("cue %s has no tones", c)
		}
		for _, tone := range tones {
			if tone.Frequency <= 0 || tone.Duration <= 0 {
				t.Errorf("cue %s has invalid tone %+v", c, tone)
			}
		}
	}

	win := Tones(CueWin)
	if len(win) != 3 || win[2].Frequency != 784 || win[2].Delay != 300*time.Millisecond {
		t.Errorf("win arpeggio = %+v", win)
	}
	if Tones("missing") != nil {
		t.Error("unknown cue should have no tones")
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		event EventType
		want  Cue
		ok    bool
	}{
		{PlantPlaced, CuePlant, true},
		{ProjectileFired, CueShoot, true},
		{PickupCollected, CueSunCollect, true},
		{LevelComplete, CueWin, true},
		{GameOver, CueLose, true},
		{PlantRemoved, CueShovel, true},
		{ZombieSpawned, "", false},
	}
	for _, tt := range tests {
		got, ok := CueFor(tt.event)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CueFor(%s) = %q, %v, want %q, %v", tt.event, got, ok, tt.want, tt.ok)
		}
	}
}
