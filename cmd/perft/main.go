package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"

	gs "chess-ai/gamestate"
)

func main() {
	fen := flag.String("fen", gs.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Compare per-move counts against dragontoothmg")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	g, err := gs.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *verify {
		if mismatches := verifyDivide(g, *fen, *depth); mismatches > 0 {
			log.Fatalf("%d root moves disagree with dragontoothmg", mismatches)
		}
		fmt.Println("verify: ok")
		return
	}

	if *divide {
		div := g.PerftDivide(*depth)
		moves := maps.Keys(div)
		sort.Strings(moves)
		var sum uint64
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
			sum += div[m]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatalf("creating cpuprofile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("start cpu profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += g.Perft(*depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}

// verifyDivide prints every root move whose count differs from the reference
// generator and returns how many did.
func verifyDivide(g *gs.GameState, fen string, depth int) int {
	ours := g.PerftDivide(depth)

	ref := dragontoothmg.ParseFen(fen)
	theirs := make(map[string]uint64)
	for _, m := range ref.GenerateLegalMoves() {
		unapply := ref.Apply(m)
		theirs[strings.ToLower(m.String())] = dragonPerft(&ref, depth-1)
		unapply()
	}

	all := maps.Keys(ours)
	for m := range theirs {
		if _, ok := ours[m]; !ok {
			all = append(all, m)
		}
	}
	sort.Strings(all)

	mismatches := 0
	for _, m := range all {
		a, okA := ours[m]
		b, okB := theirs[m]
		if a != b || okA != okB {
			fmt.Printf("%s: ours %d (present=%v) dragontoothmg %d (present=%v)\n", m, a, okA, b, okB)
			mismatches++
		}
	}
	return mismatches
}

func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragonPerft(b, depth-1)
		unapply()
	}
	return nodes
}
