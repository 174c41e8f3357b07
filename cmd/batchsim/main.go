// batchsim 批量运行自动对局，输出每局数据和按关卡汇总的统计，用于数值平衡检查
//
// 用法：
//
//	go run ./cmd/batchsim -rounds 50 -level 3 -output out/level3
//	go run ./cmd/batchsim -rounds 20 -all-levels -config myconfig/
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gonewx/lanedefense/pkg/bot"
	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/telemetry"
)

func main() {
	rounds := flag.Int("rounds", 20, "Rounds per level")
	level := flag.Int("level", 1, "Level to simulate")
	allLevels := flag.Bool("all-levels", false, "Simulate every level from 1 to maxLevel")
	seed := flag.Uint64("seed", 1, "Seed of the first round (incremented per round)")
	maxMinutes := flag.Int("max-minutes", 15, "Simulated time cap per round")
	configDir := flag.String("config", "", "Directory with catalog.yaml / round.yaml / spawn_rules.yaml overrides")
	outputDir := flag.String("output", "", "Output directory for rounds.csv and summary.csv (empty = no files)")
	verbose := flag.Bool("verbose", false, "Enable per-round logging")
	flag.Parse()

	// 日志只在 verbose 时输出，汇总结果直接写 stdout
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if *rounds < 1 {
		fmt.Fprintln(os.Stderr, "-rounds must be at least 1")
		os.Exit(2)
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	levels := []int{*level}
	if *allLevels {
		levels = levels[:0]
		for l := 1; l <= cfg.Round.MaxLevel; l++ {
			levels = append(levels, l)
		}
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open output: %v\n", err)
		os.Exit(1)
	}
	if err := out.WriteConfig(cfg.Round); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}

	start := time.Now()
	var records []telemetry.RoundRecord
	next := *seed
	for _, l := range levels {
		for range *rounds {
			opts := bot.DefaultRoundOptions(l, next)
			opts.MaxDuration = time.Duration(*maxMinutes) * time.Minute
			next++

			rec := bot.PlayRound(cfg, opts)
			records = append(records, rec)
			if err := out.WriteRound(rec); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
		}
	}

	summaries := telemetry.Summarize(records)
	if err := out.WriteSummary(summaries); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close output: %v\n", err)
	}

	fmt.Printf("%d rounds in %v\n", len(records), time.Since(start).Round(time.Millisecond))
	fmt.Printf("%-6s %-7s %-9s %-14s %-12s %-10s\n", "level", "rounds", "win rate", "duration (s)", "median (s)", "kills")
	for _, s := range summaries {
		fmt.Printf("%-6d %-7d %-9.2f %6.1f ± %-5.1f %-12.1f %-10.1f\n",
			s.Level, s.Rounds, s.WinRate, s.MeanDuration, s.StdDuration, s.MedianDuration, s.MeanKills)
	}
	if dir := out.Dir(); dir != "" {
		fmt.Printf("results written to %s\n", dir)
	}
}
