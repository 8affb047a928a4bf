// Package frame runs the per-frame update loop: an ordered list of systems
// sharing a typed resource table, with a command buffer flushed after every
// frame.
package frame

import (
	"reflect"
	"strings"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount int
	Frames      uint64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemTimings struct {
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func (t *systemTimings) record(d time.Duration) {
	t.count++
	t.last = d
	t.total += d
	t.min = min(t.min, d)
	t.max = max(t.max, d)
}

// Scheduler executes registered systems in registration order.
type Scheduler struct {
	resources *Resources
	systems   []System
	timings   []*systemTimings
	frames    uint64
}

func NewScheduler(resources *Resources) *Scheduler {
	return &Scheduler{resources: resources}
}

func (s *Scheduler) Resources() *Resources {
	return s.resources
}

// Register appends system to the execution order and binds its Singleton
// fields.
func (s *Scheduler) Register(system System) {
	s.bindSingletons(system)
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Pointer {
		systemType = systemType.Elem()
	}
	s.timings = append(s.timings, &systemTimings{
		name: systemType.Name(),
		min:  time.Duration(1<<63 - 1),
	})
}

func (s *Scheduler) bindSingletons(system System) {
	value := reflect.ValueOf(system)
	if value.Kind() == reflect.Pointer {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}
		if !strings.HasPrefix(field.Type().Name(), "Singleton[") {
			continue
		}

		init := field.Addr().MethodByName("Init")
		if !init.IsValid() {
			panic("Init method not found on Singleton field: " + value.Type().Field(i).Name)
		}
		init.Call([]reflect.Value{reflect.ValueOf(s.resources)})
	}
}

// Once executes every system once with the given delta time, then flushes
// the frame's commands.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.frames, s.resources)
	s.frames++

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timings[i].record(time.Since(start))
	}

	frame.Commands.Flush()
}

// Stats returns execution statistics for every registered system.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.timings)),
	}

	for i, t := range s.timings {
		var avg time.Duration
		minDuration := t.min
		if t.count > 0 {
			avg = t.total / time.Duration(t.count)
		} else {
			minDuration = 0
		}
		stats.Systems[i] = SystemStats{
			Name:           t.name,
			ExecutionCount: t.count,
			MinDuration:    minDuration,
			MaxDuration:    t.max,
			AvgDuration:    avg,
			LastDuration:   t.last,
			TotalDuration:  t.total,
		}
	}
	return stats
}
