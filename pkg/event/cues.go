package event

import "time"

// Waveform 提示音波形
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSawtooth
)

// String 返回波形名称
func (w Waveform) String() string {
	switch w {
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	default:
		return "sine"
	}
}

// Tone 单个音符
type Tone struct {
	Frequency float64       // Hz
	Duration  time.Duration // 持续时间
	Delay     time.Duration // 相对提示音开始的延迟
	Wave      Waveform
}

// Cue 提示音标识
type Cue string

const (
	CuePlant       Cue = "plant"
	CueShoot       Cue = "shoot"
	CueZombieHit   Cue = "zombieHit"
	CueSunCollect  Cue = "sunCollect"
	CueZombieEat   Cue = "zombieEat"
	CueWin         Cue = "win"
	CueLose        Cue = "lose"
	CueShovel      Cue = "shovel"
	CueButtonClick Cue = "buttonClick"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

var cueTones = map[Cue][]Tone{
	CuePlant:      {{Frequency: 800, Duration: ms(100), Wave: WaveSine}},
	CueShoot:      {{Frequency: 400, Duration: ms(50), Wave: WaveSquare}},
	CueZombieHit:  {{Frequency: 200, Duration: ms(100), Wave: WaveSawtooth}},
	CueSunCollect: {{Frequency: 1000, Duration: ms(150), Wave: WaveSine}},
	CueZombieEat:  {{Frequency: 150, Duration: ms(200), Wave: WaveSawtooth}},
	CueWin: {
		{Frequency: 523, Duration: ms(150), Wave: WaveSine},
		{Frequency: 659, Duration: ms(150), Delay: ms(150), Wave: WaveSine},
		{Frequency: 784, Duration: ms(300), Delay: ms(300), Wave: WaveSine},
	},
	CueLose: {
		{Frequency: 400, Duration: ms(200), Wave: WaveSawtooth},
		{Frequency: 300, Duration: ms(200), Delay: ms(200), Wave: WaveSawtooth},
		{Frequency: 200, Duration: ms(400), Delay: ms(400), Wave: WaveSawtooth},
	},
	CueShovel:      {{Frequency: 300, Duration: ms(100), Wave: WaveSquare}},
	CueButtonClick: {{Frequency: 600, Duration: ms(50), Wave: WaveSquare}},
}

// Tones 返回提示音的音符序列，未知提示音返回 nil
func Tones(c Cue) []Tone {
	return cueTones[c]
}

// AllCues 返回所有提示音（固定顺序）
func AllCues() []Cue {
	return []Cue{
		CuePlant, CueShoot, CueZombieHit, CueSunCollect, CueZombieEat,
		CueWin, CueLose, CueShovel, CueButtonClick,
	}
}

var eventCues = map[EventType]Cue{
	PlantPlaced:     CuePlant,
	PlantDropped:    CuePlant,
	ProjectileFired: CueShoot,
	ZombieHit:       CueZombieHit,
	ZombieKilled:    CueZombieHit,
	PickupCollected: CueSunCollect,
	ZombieStartEat:  CueZombieEat,
	LevelComplete:   CueWin,
	GameOver:        CueLose,
	PlantRemoved:    CueShovel,
	PlantLifted:     CueShovel,
	ToolSelected:    CueButtonClick,
}

// CueFor 返回事件对应的提示音
func CueFor(t EventType) (Cue, bool) {
	c, ok := eventCues[t]
	return c, ok
}
