package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/chronochess/app"
	"github.com/plus3/chronochess/frame"
)

type Report struct {
	// Configuration
	Duration       time.Duration
	Seed           uint64
	GCPauseMetrics bool

	// Results
	TotalUpdates  int64
	TotalTime     time.Duration
	UpdateTime    Stats
	Systems       []frame.SystemStats
	Nodes         int
	Branches      int
	MaxDepth      int
	Commits       app.CommitStats
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
	s.Min, s.Max = s.Samples[0], s.Samples[0]
	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Timeline Stress Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}

## Timeline
- **Nodes:** {{.Nodes}}
- **Branches:** {{.Branches}}
- **Longest Path:** {{.MaxDepth}} snapshots
- **Commits:** {{.Commits.Appends}} appended, {{.Commits.Forks}} forked, {{.Commits.Branches}} branched, {{.Commits.Rejected}} rejected

## Frame Times
- **Total Frames:** {{.TotalUpdates}}
- **Total Time:** {{.TotalTime}}
- **Frame:** avg {{.UpdateTime.Avg}}, min {{.UpdateTime.Min}}, max {{.UpdateTime.Max}}
{{range .Systems}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{end}}
## Memory Usage
- Heap Alloc:  {{mb .MemStatsStart.HeapAlloc}} MB -> {{mb .MemStatsEnd.HeapAlloc}} MB
- Total Alloc: {{mb .MemStatsStart.TotalAlloc}} MB -> {{mb .MemStatsEnd.TotalAlloc}} MB
- Num GC:      {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pauses
- **Total GC Pause:** {{ns .MemStatsEnd.PauseTotalNs}}
{{end}}`

var reportFuncs = template.FuncMap{
	"mb": func(v uint64) string {
		return fmt.Sprintf("%.2f", float64(v)/1024/1024)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

var reportTmpl = template.Must(template.New("report").Funcs(reportFuncs).Parse(reportTemplate))

func (r *Report) Generate(w io.Writer) error {
	if err := reportTmpl.Execute(w, r); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
