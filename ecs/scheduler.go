package ecs

import (
	"cmp"
	"io"
	"log/slog"
	"reflect"
	"slices"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Dispatches      int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Priority       int
	ExecutionCount int64
	FailureCount   int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	executionCount int64
	failureCount   int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type registration[A any] struct {
	system   System[A]
	name     string
	priority int
	stats    *systemStatsInternal
}

// SystemInfo describes a registered system in dispatch order.
type SystemInfo struct {
	Name     string
	Priority int
}

// Named may be implemented by systems to control the name used in stats and logs.
type Named interface {
	Name() string
}

// Scheduler holds systems ordered by priority, highest first. Systems with equal
// priority keep their registration order.
type Scheduler[A any] struct {
	storage    *Storage
	systems    []registration[A]
	dispatches int64
	logger     *slog.Logger
}

// NewScheduler creates a new scheduler whose systems read from storage.
func NewScheduler[A any](storage *Storage) *Scheduler[A] {
	return &Scheduler[A]{
		storage: storage,
		systems: make([]registration[A], 0),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger used for registration and dispatch failures.
func (s *Scheduler[A]) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.logger = logger
}

// Add registers a system with priority 0.
func (s *Scheduler[A]) Add(system System[A]) {
	s.AddSystem(system, 0)
}

// AddSystem appends the system and re-sorts all systems by priority, descending.
// The sort is stable, so systems of equal priority run in the order they were added.
func (s *Scheduler[A]) AddSystem(system System[A], priority int) {
	name := systemName(system)
	s.systems = append(s.systems, registration[A]{
		system:   system,
		name:     name,
		priority: priority,
		stats: &systemStatsInternal{
			minDuration: time.Duration(1<<63 - 1),
		},
	})

	slices.SortStableFunc(s.systems, func(a, b registration[A]) int {
		return cmp.Compare(b.priority, a.priority)
	})

	s.logger.Debug("system registered", "system", name, "priority", priority, "systems", len(s.systems))
}

func systemName(system any) string {
	if named, ok := system.(Named); ok {
		return named.Name()
	}

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}

// ProcessSystems runs every registered system once, in priority order, passing
// each the same frame built from args. The first error returned by a system stops
// the dispatch and is returned as is; commands queued during that dispatch are
// dropped. Panics are not recovered. After a successful dispatch the frame's
// commands are flushed to storage.
func (s *Scheduler[A]) ProcessSystems(args A) error {
	frame := &Frame[A]{
		Storage:  s.storage,
		Commands: newCommands(),
		Args:     args,
	}
	s.dispatches++

	for _, reg := range s.systems {
		start := time.Now()
		err := reg.system.Process(frame)
		duration := time.Since(start)

		stats := reg.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if err != nil {
			stats.failureCount++
			s.logger.Error("system failed", "system", reg.name, "priority", reg.priority, "error", err)
			frame.Commands.Reset()
			return err
		}
	}

	return frame.Commands.Flush(s.storage)
}

// Systems returns the registered systems in dispatch order.
func (s *Scheduler[A]) Systems() []SystemInfo {
	infos := make([]SystemInfo, len(s.systems))
	for i, reg := range s.systems {
		infos[i] = SystemInfo{Name: reg.name, Priority: reg.priority}
	}
	return infos
}

// GetStats returns statistics about system execution, in dispatch order.
func (s *Scheduler[A]) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Dispatches:  s.dispatches,
		Systems:     make([]SystemStats, len(s.systems)),
	}

	var totalExecs int64
	for i, reg := range s.systems {
		internal := reg.stats
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           reg.name,
			Priority:       reg.priority,
			ExecutionCount: internal.executionCount,
			FailureCount:   internal.failureCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
