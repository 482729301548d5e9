package telemetry

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/gocarina/gocsv"
)

// PairStat aggregates every record for one mover, obstacle and axis.
type PairStat struct {
	Mover         string
	Obstacle      string
	Axis          string
	Hits          int
	MaxCorrection float64
	FirstTick     int
	LastTick      int
}

type pairKey struct {
	mover, obstacle, axis string
}

// Read parses a trace written by Recorder.
func Read(in io.Reader) ([]CollisionRecord, error) {
	var records []CollisionRecord
	if err := gocsv.Unmarshal(in, &records); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return records, nil
}

// Summarize groups records by mover, obstacle and axis. The result is sorted
// by hit count, most frequent first, then by name.
func Summarize(records []CollisionRecord) []PairStat {
	index := make(map[pairKey]int)
	var stats []PairStat
	for _, r := range records {
		k := pairKey{r.Mover, r.Obstacle, r.Axis}
		i, ok := index[k]
		if !ok {
			i = len(stats)
			index[k] = i
			stats = append(stats, PairStat{
				Mover:     r.Mover,
				Obstacle:  r.Obstacle,
				Axis:      r.Axis,
				FirstTick: r.Tick,
				LastTick:  r.Tick,
			})
		}
		s := &stats[i]
		s.Hits++
		s.MaxCorrection = math.Max(s.MaxCorrection, math.Abs(r.Correction))
		s.FirstTick = min(s.FirstTick, r.Tick)
		s.LastTick = max(s.LastTick, r.Tick)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		if a.Hits != b.Hits {
			return a.Hits > b.Hits
		}
		if a.Mover != b.Mover {
			return a.Mover < b.Mover
		}
		if a.Obstacle != b.Obstacle {
			return a.Obstacle < b.Obstacle
		}
		return a.Axis < b.Axis
	})
	return stats
}
