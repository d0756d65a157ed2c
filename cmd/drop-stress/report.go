package main

import (
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Pieces int
	Width  int
	Height int
	Seed   uint64

	// Results
	PiecesLocked  int
	LinesCleared  int
	BoardResets   int
	CellsSettled  int
	Violations    int
	TotalTime     time.Duration
	DropTime      Stats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Drop Stress Report

## Run Configuration
- **Pieces:** {{.Pieces}}
- **Board:** {{.Width}}x{{.Height}}
- **Seed:** {{.Seed}}

## Results
- **Pieces Locked:** {{.PiecesLocked}}
- **Lines Cleared:** {{.LinesCleared}}
- **Board Resets (spawn blocked):** {{.BoardResets}}
- **Cells Settled At End:** {{.CellsSettled}}
- **Invariant Violations:** {{.Violations}}
- **Total Time:** {{.TotalTime}}
- **Drop Time (per piece):**
  - **Avg:** {{.DropTime.Avg}}
  - **Min:** {{.DropTime.Min}}
  - **Max:** {{.DropTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
