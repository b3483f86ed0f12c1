// Command quasirand prints points of a low-discrepancy sequence.
//
// It steps a generator --count times, printing every point, then prints the
// --index-th point by direct evaluation. Optional demos estimate an integral
// (--integrate N) and scatter sites over a noise field (--placement).
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/alexshd/quasirand"
	"github.com/alexshd/quasirand/internal/config"
	"github.com/alexshd/quasirand/internal/placement"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      cfg.Log.SlogLevel(),
			TimeFormat: cfg.Log.TimeFormat,
			NoColor:    cfg.Log.NoColor,
		}),
	))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	switch cfg.Precision {
	case config.PrecisionFloat32:
		err = run[float32](ctx, cfg, out)
	default:
		err = run[float64](ctx, cfg, out)
	}
	if err != nil {
		out.Flush()
		slog.Error("quasirand failed", "error", err)
		os.Exit(1)
	}
}

func run[T quasirand.Float](ctx context.Context, cfg *config.Config, out io.Writer) error {
	g, err := quasirand.New(cfg.Dimension, T(cfg.Seed))
	if err != nil {
		return fmt.Errorf("construct generator: %w", err)
	}

	slog.Info("generator ready",
		"dim", g.Dim(),
		"seed", cfg.Seed,
		"precision", cfg.Precision,
		"phi", fmt.Sprintf("%.12f", float64(quasirand.Phi[T](g.Dim()))),
	)
	slog.Debug("step sizes", "alpha", g.Alpha())

	buf := make([]T, g.Dim())
	for i := 0; i < cfg.Count; i++ {
		buf = g.NextInto(buf)
		fmt.Fprintln(out, formatPoint(buf))
	}

	fmt.Fprintf(out, "\n%d-th point: %s\n", cfg.Index, formatPoint(g.At(cfg.Index)))

	if cfg.Integrate > 0 {
		if err := integrate(ctx, g, cfg.Integrate); err != nil {
			return err
		}
	}

	if cfg.Placement {
		if err := scatter(cfg.Seed, out); err != nil {
			return err
		}
	}

	return nil
}

// integrate estimates ∫ Π x_i over the unit cube, whose exact value is 2^-d.
func integrate[T quasirand.Float](ctx context.Context, g *quasirand.Generator[T], samples int) error {
	g.Restart()

	start := time.Now()
	est, err := quasirand.Integrate[T](ctx, g, func(p []T) T {
		v := T(1)
		for _, x := range p {
			v *= x
		}
		return v
	}, samples)
	if err != nil {
		return fmt.Errorf("integrate: %w", err)
	}

	exact := math.Pow(2, -float64(g.Dim()))
	slog.Info("integral of coordinate product",
		"estimate", float64(est.Mean),
		"exact", exact,
		"abs_error", math.Abs(float64(est.Mean)-exact),
		"samples", est.Samples,
		"elapsed", time.Since(start),
	)

	return nil
}

// scatter runs the placement demo on a fresh double-precision 2-D generator.
func scatter(seed float64, out io.Writer) error {
	g, err := quasirand.New(2, seed)
	if err != nil {
		return fmt.Errorf("placement generator: %w", err)
	}

	pcfg := placement.DefaultConfig()
	sites, err := placement.Scatter(g, pcfg)
	if err != nil {
		return fmt.Errorf("placement: %w", err)
	}

	slog.Info("placement finished",
		"sites", len(sites),
		"candidates", g.Index(),
		"threshold", pcfg.Threshold,
	)

	fmt.Fprintln(out, "\nsites:")
	for _, s := range sites {
		fmt.Fprintf(out, "%6d  %.6f %.6f  density=%.3f\n", s.Index, s.X, s.Y, s.Density)
	}

	return nil
}

func formatPoint[T quasirand.Float](p []T) string {
	bitSize := 64
	var zero T
	if _, ok := any(zero).(float32); ok {
		bitSize = 32
	}

	parts := make([]string, len(p))
	for i, x := range p {
		parts[i] = strconv.FormatFloat(float64(x), 'f', -1, bitSize)
	}
	return strings.Join(parts, " ")
}
