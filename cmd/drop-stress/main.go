package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/minofall/catalog"
	"github.com/plus3/minofall/mino"
	"github.com/plus3/minofall/pile"
)

func main() {
	pieces := flag.Int("pieces", 10000, "The number of pieces to drop.")
	width := flag.Int("width", 10, "Board width in columns.")
	height := flag.Int("height", 20, "Board height in rows.")
	seed := flag.Uint64("seed", 1, "Seed for the piece bag and move mixer.")
	moves := flag.Int("moves", 6, "Random shifts/rotations applied to each piece before dropping.")
	piecesFile := flag.String("catalog", "", "Optional YAML piece catalog (default: embedded standard set).")
	flag.Parse()

	defs := catalog.Default()
	if *piecesFile != "" {
		var err error
		defs, err = catalog.LoadFile(*piecesFile)
		if err != nil {
			log.Fatalf("Failed to load piece catalog: %v", err)
		}
	}

	log.Printf("Dropping %d pieces on a %dx%d board...", *pieces, *width, *height)

	board := pile.New(*width, *height)
	rng := rand.New(rand.NewPCG(*seed, *seed))

	report := &Report{
		Pieces: *pieces,
		Width:  *width,
		Height: *height,
		Seed:   *seed,
		DropTime: Stats{
			Samples: make([]time.Duration, 0, *pieces),
		},
	}
	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	for i := 0; i < *pieces; i++ {
		def := defs[rng.IntN(len(defs))]
		origin := mino.Point{Row: 0, Col: spawnCol(rng, def, *width)}

		s := def.Spawn(board, origin)
		if overlapsPile(board, s) {
			board.Reset()
			report.BoardResets++
			s = def.Spawn(board, origin)
		}
		s.OnLock(board.Absorb)

		dropStart := time.Now()
		mixMoves(rng, s, *moves)
		s.Drop()
		report.DropTime.Samples = append(report.DropTime.Samples, time.Since(dropStart))

		report.PiecesLocked++
		report.Violations += countViolations(board, s)
		report.LinesCleared += board.ClearFull()
	}

	report.TotalTime = time.Since(startTime)
	report.CellsSettled = board.Len()
	report.DropTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Drop run finished.")

	fmt.Println("\n--- Drop Stress Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.Violations > 0 {
		log.Fatalf("Invariant violations detected: %d", report.Violations)
	}
}

// spawnCol picks a random origin column that keeps every cell of the piece
// inside the board.
func spawnCol(rng *rand.Rand, def mino.PieceDef, width int) int {
	minCol, maxCol := def.Cells[0].Col, def.Cells[0].Col
	for _, c := range def.Cells[1:] {
		minCol = min(minCol, c.Col)
		maxCol = max(maxCol, c.Col)
	}
	span := maxCol - minCol + 1
	if span >= width {
		return -minCol
	}
	return rng.IntN(width-span+1) - minCol
}

// overlapsPile reports whether a freshly spawned shape collides with settled
// cells. Spawning over the pile is this harness's game-over condition.
func overlapsPile(board *pile.Board, s *mino.Shape) bool {
	for i := 0; i < s.Len(); i++ {
		p := s.Block(i).Position()
		if !board.InBounds(p) || board.Occupant(p) != mino.NoShape {
			return true
		}
	}
	return false
}

// mixMoves applies a burst of random shifts and rotations. Illegal moves are
// routine no-ops, so the mix never needs to check legality itself.
func mixMoves(rng *rand.Rand, s *mino.Shape, n int) {
	for i := 0; i < n; i++ {
		switch rng.IntN(3) {
		case 0:
			s.MoveLeft()
		case 1:
			s.MoveRight()
		case 2:
			s.Rotate()
		}
	}
}

// countViolations checks the locked shape against the pile: every block must
// be in bounds and its cell must be attributed to the shape after absorption.
func countViolations(board *pile.Board, s *mino.Shape) int {
	violations := 0
	for i := 0; i < s.Len(); i++ {
		p := s.Block(i).Position()
		if !board.InBounds(p) || board.Occupant(p) != s.ID() {
			violations++
		}
	}
	return violations
}
