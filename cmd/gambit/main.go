package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kvasari/gambit/pkg/engine"
	"github.com/kvasari/gambit/pkg/engine/console"
	"github.com/kvasari/gambit/pkg/engine/uci"
	"github.com/kvasari/gambit/pkg/eval"
	"github.com/kvasari/gambit/pkg/search"
	"github.com/seekerror/logw"
)

var (
	noise = flag.Int("noise", 10, "Evaluation noise in millipawns (zero if deterministic)")
	hash  = flag.Uint("hash", 64, "Transposition table size in MB (zero disables it)")
	depth = flag.Uint("depth", 0, "Default search depth limit (zero means no limit)")
	book  = flag.String("book", "", "Path to a Polyglot (.bin) opening book")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: gambit [options]

GAMBIT is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	s := search.AlphaBeta{Eval: eval.Standard{}}
	e := engine.New(ctx, "gambit", "kvasari", s, engine.WithOptions(engine.Options{
		Depth: *depth,
		Hash:  uint(*hash),
		Noise: uint(*noise),
	}), engine.WithTable(search.NewTranspositionTable))

	var opts []uci.Option
	if *book != "" {
		b, err := engine.NewPolyglotBook(*book)
		if err != nil {
			logw.Exitf(ctx, "Failed to read opening book %v: %v", *book, err)
		}
		opts = append(opts, uci.UseBook(b, 0))
	}

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		// Use UCI protocol.

		driver, out := uci.NewDriver(ctx, e, in, opts...)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, s, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
