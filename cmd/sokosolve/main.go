// sokosolve is the batch solver front end: it parses a level file, runs
// the solver core under a deadline, and prints the resulting move string.
// Grounded on cmd/chessplay-uci/main.go's flag/profiling/logging shape.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hailam/sokosolve/internal/analysis"
	"github.com/hailam/sokosolve/internal/bench"
	"github.com/hailam/sokosolve/internal/search"
	"github.com/hailam/sokosolve/internal/solver"
)

var (
	levelPath  = flag.String("level", "", "path to a Sokoban level file")
	timeout    = flag.Duration("timeout", solver.DefaultTimeout, "wall-clock budget for the search")
	cpuprofile = flag.String("cpuprofile", "", "write a CPU profile to this file")
	cacheDir   = flag.String("cachedir", "", "enable the BadgerDB analysis/history cache at this directory")
	progress   = flag.Bool("progress", false, "log periodic search progress")
	runBench   = flag.Bool("bench", false, "solve the built-in benchmark corpus and exit")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", *cpuprofile)
	}

	if *runBench {
		runBenchmark()
		return
	}

	if *levelPath == "" {
		log.Fatal("usage: sokosolve -level <file> [-timeout 15s] [-cachedir dir] [-progress] [-bench]")
	}

	mapData, itemsData, err := loadLevel(*levelPath)
	if err != nil {
		log.Fatalf("loading level: %v", err)
	}
	height := len(mapData)
	width := len(mapData[0])

	var opts []solver.Option
	opts = append(opts, solver.WithTimeout(*timeout))

	if *progress {
		opts = append(opts, solver.WithProgress(func(p search.Progress) {
			log.Printf("expanded=%d frontier=%d closed=%d bestH=%d elapsed=%v",
				p.Expanded, p.FrontierLen, p.ClosedLen, p.BestHeuristic, p.Elapsed)
		}))
	}

	var store *analysis.Store
	if *cacheDir != "" {
		store, err = analysis.Open(*cacheDir)
		if err != nil {
			log.Printf("Warning: failed to open analysis cache at %s: %v", *cacheDir, err)
		} else {
			defer store.Close()
			opts = append(opts, solver.WithAnalysisCache(store))
		}
	}

	start := time.Now()
	moves, err := solver.Solve(width, height, mapData, itemsData, opts...)
	elapsed := time.Since(start)

	if err != nil {
		log.Fatalf("invalid level: %v", err)
	}
	if moves == "" {
		fmt.Println("no solution found")
		os.Exit(1)
	}
	fmt.Printf("%s\n", moves)
	log.Printf("solved in %v, %d moves", elapsed, len(moves))
}

func runBenchmark() {
	for _, r := range bench.Run(*timeout) {
		status := "solved"
		if !r.Solved {
			status = "no solution"
		}
		log.Printf("%-24s %-12s %v", r.Name, status, r.Elapsed)
	}
}
