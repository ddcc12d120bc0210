// magicgen searches for bishop and rook magic multipliers and prints them as
// Go tables.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hailam/chesscore/internal/board"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	seed       = flag.Uint64("seed", 0x1C6A1F0E5F2B7D3D, "PRNG seed")
	piece      = flag.String("piece", "both", "bishop, rook or both")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("magicgen: ")

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	var kinds []bool
	switch *piece {
	case "bishop":
		kinds = []bool{false}
	case "rook":
		kinds = []bool{true}
	case "both":
		kinds = []bool{false, true}
	default:
		log.Fatalf("unknown -piece %q", *piece)
	}

	rng := board.NewPRNG(*seed)
	for _, rook := range kinds {
		start := time.Now()
		magics, err := search(rook, rng)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("%s magics found in %v", kindName(rook), time.Since(start).Round(time.Millisecond))
		writeTable(os.Stdout, rook, magics)
	}
}

func search(rook bool, rng *board.PRNG) ([64]uint64, error) {
	var magics [64]uint64
	for sq := board.A1; sq <= board.H8; sq++ {
		m, err := board.FindMagic(sq, rook, rng)
		if err != nil {
			return magics, err
		}
		magics[sq] = m
	}
	return magics, nil
}

func kindName(rook bool) string {
	if rook {
		return "rook"
	}
	return "bishop"
}

// writeTable prints magics as a Go array literal, four per line.
func writeTable(w io.Writer, rook bool, magics [64]uint64) {
	fmt.Fprintf(w, "var %sMagicNumbers = [64]uint64{\n", kindName(rook))
	for i := 0; i < 64; i += 4 {
		fmt.Fprintf(w, "\t0x%016X, 0x%016X, 0x%016X, 0x%016X,\n", magics[i], magics[i+1], magics[i+2], magics[i+3])
	}
	fmt.Fprintln(w, "}")
}
