// Command seedgen writes a synthetic seed payload the API can load through
// seed.file or serve from seed.url.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"sales-task-tracker/internal/task/repository/seed"
	"sales-task-tracker/pkg/clock"
	"sales-task-tracker/pkg/idgen"
	"sales-task-tracker/pkg/log"
)

func main() {
	n := flag.Int("n", 30, "number of tasks to generate")
	out := flag.String("o", "", "output file (default stdout)")
	rngSeed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	flag.Parse()

	if *n < 0 {
		fmt.Fprintln(os.Stderr, "Usage: seedgen -n <count> [-o seed.json] [-seed 42]")
		os.Exit(2)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		Encoding:     "console",
		ColorEnabled: true,
	})
	ctx := context.Background()

	count, err := run(*n, *out, *rngSeed)
	if err != nil {
		logger.Errorf(ctx, "seedgen: %v", err)
		os.Exit(1)
	}
	if *out != "" {
		logger.Infof(ctx, "Wrote %d tasks to %s", count, *out)
	}
}

// run generates n tasks and writes them to path, or stdout when path is
// empty. It returns the number of tasks written.
func run(n int, path string, rngSeed uint64) (int, error) {
	w := io.Writer(os.Stdout)
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return 0, fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	gen := seed.NewGenerator(clock.New(), idgen.NewUUID(), rngSeed)
	tasks := gen.Generate(n)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return 0, fmt.Errorf("write tasks: %w", err)
	}
	return len(tasks), nil
}
