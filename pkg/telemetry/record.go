// Package telemetry records batch simulation results as CSV and summary statistics.
package telemetry

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Outcome of a finished (or timed out) round.
const (
	OutcomeWin     = "win"
	OutcomeLoss    = "loss"
	OutcomeTimeout = "timeout"
)

// RoundRecord is one simulated round.
type RoundRecord struct {
	Seed         uint64  `csv:"seed"`
	Level        int     `csv:"level"`
	Outcome      string  `csv:"outcome"`
	DurationSec  float64 `csv:"duration_sec"`
	Kills        int     `csv:"kills"`
	Spawned      int     `csv:"spawned"`
	PlantsPlaced int     `csv:"plants_placed"`
	PlantsLost   int     `csv:"plants_lost"`
	SunProduced  int     `csv:"sun_produced"`
	SunCollected int     `csv:"sun_collected"`
	ShotsFired   int     `csv:"shots_fired"`
	FinalSun     int     `csv:"final_sun"`
}

// Summary aggregates the records of one level.
type Summary struct {
	Level          int     `csv:"level"`
	Rounds         int     `csv:"rounds"`
	Wins           int     `csv:"wins"`
	WinRate        float64 `csv:"win_rate"`
	MeanDuration   float64 `csv:"mean_duration_sec"`
	StdDuration    float64 `csv:"std_duration_sec"`
	MedianDuration float64 `csv:"median_duration_sec"`
	MeanKills      float64 `csv:"mean_kills"`
	MeanPlantsLost float64 `csv:"mean_plants_lost"`
}

// Summarize groups records by level and computes per-level statistics.
// Levels are returned in ascending order.
func Summarize(records []RoundRecord) []Summary {
	byLevel := make(map[int][]RoundRecord)
	for _, r := range records {
		byLevel[r.Level] = append(byLevel[r.Level], r)
	}

	levels := make([]int, 0, len(byLevel))
	for level := range byLevel {
		levels = append(levels, level)
	}
	slices.Sort(levels)

	out := make([]Summary, 0, len(levels))
	for _, level := range levels {
		out = append(out, summarizeLevel(level, byLevel[level]))
	}
	return out
}

func summarizeLevel(level int, records []RoundRecord) Summary {
	n := len(records)
	durations := make([]float64, n)
	kills := make([]float64, n)
	lost := make([]float64, n)
	wins := 0
	for i, r := range records {
		durations[i] = r.DurationSec
		kills[i] = float64(r.Kills)
		lost[i] = float64(r.PlantsLost)
		if r.Outcome == OutcomeWin {
			wins++
		}
	}

	s := Summary{
		Level:          level,
		Rounds:         n,
		Wins:           wins,
		WinRate:        float64(wins) / float64(n),
		MeanKills:      stat.Mean(kills, nil),
		MeanPlantsLost: stat.Mean(lost, nil),
	}

	if n > 1 {
		s.MeanDuration, s.StdDuration = stat.MeanStdDev(durations, nil)
	} else {
		s.MeanDuration = durations[0]
	}

	sorted := slices.Clone(durations)
	slices.Sort(sorted)
	s.MedianDuration = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return s
}
