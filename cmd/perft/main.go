// Command perft runs the move-generator's correctness harness over a FEN
// position to a given depth and reports the node count and elapsed time.
// It is the one executable this repository ships (spec §1 calls perft "the
// primary correctness harness"), not a UCI front-end — that layer stays out
// of scope per spec.md §1.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/corvidae/chesscore"
	"github.com/corvidae/chesscore/perft"
)

// config is an optional named suite of FEN positions and depths, loaded from
// a TOML file so repeated perft runs don't need to be retyped on the command
// line (spec.md's Configuration ambient stack, §2 of SPEC_FULL.md).
type config struct {
	Suite []struct {
		Name  string `toml:"name"`
		FEN   string `toml:"fen"`
		Depth int    `toml:"depth"`
		Want  int    `toml:"want"`
	} `toml:"suite"`
}

func main() {
	fen := flag.String("fen", chesscore.StartingPosition().FEN(), "FEN of the position to run perft from")
	depth := flag.Int("depth", 4, "perft depth")
	divide := flag.Bool("divide", false, "print per-root-move node counts instead of the total")
	suitePath := flag.String("suite", "", "path to a TOML suite of positions to run instead of -fen/-depth")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if *suitePath != "" {
		runSuite(logger, *suitePath)
		return
	}

	pos, err := chesscore.ParsePosition(*fen)
	if err != nil {
		logger.Fatal("invalid FEN", zap.Error(err))
	}

	start := time.Now()
	if *divide {
		counts := perft.Divide(pos, *depth)
		total := 0
		for move, n := range counts {
			logger.Info("root move", zap.String("move", move), zap.Int("nodes", n))
			total += n
		}
		logger.Info("perft complete", zap.Int("depth", *depth), zap.Int("nodes", total),
			zap.Duration("elapsed", time.Since(start)))
		return
	}

	nodes := perft.Count(pos, *depth)
	logger.Info("perft complete", zap.Int("depth", *depth), zap.Int("nodes", nodes),
		zap.Duration("elapsed", time.Since(start)))
}

func runSuite(logger *zap.Logger, path string) {
	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		logger.Fatal("cannot read suite", zap.String("path", path), zap.Error(err))
	}

	failures := 0
	for _, c := range cfg.Suite {
		pos, err := chesscore.ParsePosition(c.FEN)
		if err != nil {
			logger.Error("invalid suite entry", zap.String("name", c.Name), zap.Error(err))
			failures++
			continue
		}
		start := time.Now()
		got := perft.Count(pos, c.Depth)
		elapsed := time.Since(start)

		if got == c.Want {
			logger.Info("pass", zap.String("name", c.Name), zap.Int("depth", c.Depth),
				zap.Int("nodes", got), zap.Duration("elapsed", elapsed))
		} else {
			logger.Error("fail", zap.String("name", c.Name), zap.Int("depth", c.Depth),
				zap.Int("want", c.Want), zap.Int("got", got), zap.Duration("elapsed", elapsed))
			failures++
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}
