package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"

	"github.com/plus3/vigil/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	systemCount := flag.Int("systems", 50, "The number of scan systems to register.")
	seed := flag.Uint64("seed", 1, "Seed for entity and system generation.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profileMode := flag.String("profile", "", "Write a profile to the working directory: cpu or mem.")
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		log.Fatalf("unknown profile mode %q", *profileMode)
	}

	runID := uuid.New()
	log.Printf("Starting ECS stress test %s...\n", runID)

	// 1. Setup Storage and Scheduler
	r := rand.New(rand.NewPCG(*seed, *seed))
	world := ecs.NewWorld[frameArgs]()
	RegisterSystems(world.Scheduler, world.Storage, r, *systemCount)

	// 2. Populate Storage with initial entities
	log.Printf("Populating storage with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		// Create an entity with 1 to 5 random components
		CreateRandomEntity(world.Storage, r, r.IntN(5)+1)
	}
	log.Println("Population complete.")

	// 3. Run the dispatch loop
	report := &Report{
		RunID:          runID.String(),
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     len(componentFactories),
		Systems:        len(world.Scheduler.Systems()),
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running dispatches for %s...\n", *duration)
	startTime := time.Now()
	deadline := startTime.Add(*duration)
	lastFrameTime := startTime

	for time.Now().Before(deadline) {
		deltaTime := time.Since(lastFrameTime)
		lastFrameTime = time.Now()

		updateStart := time.Now()
		if err := world.ProcessSystems(frameArgs{DeltaTime: float32(deltaTime.Seconds())}); err != nil {
			log.Fatalf("Dispatch failed: %v", err)
		}
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = int64(len(report.UpdateTime.Samples))
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Storage = world.CollectStats()
	report.Scheduler = world.Scheduler.GetStats()

	log.Println("Stress run finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
