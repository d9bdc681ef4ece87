package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"chess-ai/config"
	"chess-ai/engine"
	gs "chess-ai/gamestate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// --- Flags ---
	depthFlag := flag.Int("depth", cfg.Engine.Depth, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	seedFlag := flag.Int64("seed", cfg.Engine.Seed, "RNG seed for root shuffling (0 = time based)")
	noShuffle := flag.Bool("noshuffle", false, "search root moves in generation order")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := gs.StartFEN
	if *fenFlag != "" {
		fen = *fenFlag
	}
	if _, err := gs.ParseFEN(fen); err != nil {
		log.Fatalf("bad fen: %v", err)
	}

	searcher := engine.NewSearcher(cfg.Params(), *seedFlag)
	searcher.Shuffle = !*noShuffle

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", fen, *depthFlag, *repeatFlag)

	var total engine.Stats
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		// Fresh position for each run
		g := gs.MustParseFEN(fen)
		legal := g.GenerateLegalMoves()

		iterStart := time.Now()
		best, ok := searcher.ChooseBestMove(g, legal, *depthFlag)
		iterElapsed := time.Since(iterStart)
		total.Add(searcher.Stats)

		bestStr := "(none)"
		if ok {
			bestStr = best.UCI() + " " + best.String()
		}
		fmt.Printf("iteration %d: bestmove %s  time=%v  nodes=%d  cutoffs=%d\n",
			i+1, bestStr, iterElapsed, searcher.Stats.Nodes, searcher.Stats.BetaCutoffs)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v\n", totalElapsed)
	fmt.Println(total.String())
	if secs := totalElapsed.Seconds(); secs > 0 {
		fmt.Printf("nps: %.0f\n", float64(total.Nodes)/secs)
	}

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
