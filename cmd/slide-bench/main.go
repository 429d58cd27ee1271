// Command slide-bench reports solve statistics -- search nodes, IDA*
// iteration count and wall-clock time -- for a single board, after
// building the relevant pattern database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/seekerror/logw"

	"github.com/fifteenpuzzle/solver/pkg/pdb"
	"github.com/fifteenpuzzle/solver/pkg/puzzle"
	"github.com/fifteenpuzzle/solver/pkg/solver"
)

var (
	width    = flag.Int("width", 4, "Board width")
	height   = flag.Int("height", 4, "Board height")
	metric   = flag.String("metric", "stm", "Move metric: stm or mtm")
	board    = flag.String("board", "", "Board to solve, as row-major tiles separated by spaces/slashes (0 = gap)")
	cacheDir = flag.String("cache-dir", "", "Pattern database cache directory (default: OS user cache dir)")
	compress = flag.Bool("cache-compress", false, "Compress cached pattern databases with zstd")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: slide-bench -board "..." [options]

slide-bench reports solve statistics for a single board.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	m := puzzle.Stm
	if strings.EqualFold(*metric, "mtm") {
		m = puzzle.Mtm
	}

	if *board == "" {
		flag.Usage()
		logw.Exitf(ctx, "missing -board")
	}

	tiles, err := parseTiles(*board)
	if err != nil {
		logw.Exitf(ctx, "invalid -board: %v", err)
	}

	b, err := puzzle.NewBoard(tiles, *width, *height)
	if err != nil {
		logw.Exitf(ctx, "invalid board: %v", err)
	}

	var cacheOpts []pdb.Option
	if *cacheDir != "" {
		cacheOpts = append(cacheOpts, pdb.WithCacheDir(*cacheDir))
	}
	if *compress {
		cacheOpts = append(cacheOpts, pdb.WithCompression())
	}

	buildStart := time.Now()
	s := solver.New(ctx, *width, *height, m, cacheOpts...)
	buildElapsed := time.Since(buildStart)

	solveStart := time.Now()
	moves, stats, err := solver.Solve(s, b, solver.Options{})
	solveElapsed := time.Since(solveStart)
	if err != nil {
		logw.Exitf(ctx, "solve failed: %v", err)
	}

	fmt.Printf("shape: %dx%d, metric: %v\n", *width, *height, m)
	fmt.Printf("pdb build: %v\n", buildElapsed)
	fmt.Printf("solve: %v\n", solveElapsed)
	fmt.Printf("solution length: %d\n", moves.Len(m))
	fmt.Printf("nodes: %d\n", stats.Nodes)
	for i, it := range stats.Iterations {
		fmt.Printf("  iteration %d: depth=%d\n", i, it.Depth)
	}
}

func parseTiles(s string) ([]int, error) {
	s = strings.NewReplacer("/", " ").Replace(s)
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("tile %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}
