package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/marketsynth/gends/internal/export"
	"github.com/marketsynth/gends/internal/generator"
	"github.com/marketsynth/gends/internal/marketdata"
	"github.com/marketsynth/gends/internal/pricing"
)

type generateFlags struct {
	startingPrice float64
	trend         string
	trendStrength float64
	volatility    float64
	numPoints     uint
	seed          int64
	preset        string
	format        string
	outPath       string
}

func newGenerateCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a deterministic OHLC candle or tick series",
	}

	cmd.PersistentFlags().Float64Var(&flags.startingPrice, "starting-price", 100, "starting price")
	cmd.PersistentFlags().StringVar(&flags.trend, "trend", "sideways", "trend direction: bullish, bearish, sideways")
	cmd.PersistentFlags().Float64Var(&flags.trendStrength, "trend-strength", 0, "trend strength magnitude")
	cmd.PersistentFlags().Float64Var(&flags.volatility, "volatility", 0, "volatility (0 uses a smart default)")
	cmd.PersistentFlags().UintVar(&flags.numPoints, "num-points", 100, "number of candles/ticks to generate")
	cmd.PersistentFlags().Int64Var(&flags.seed, "seed", -1, "PRNG seed (negative means OS entropy)")
	cmd.PersistentFlags().StringVar(&flags.preset, "preset", "", "preset config: volatile, stable, bull, bear")
	cmd.PersistentFlags().StringVar(&flags.format, "format", "csv", "output format: csv, json, jsonl")
	cmd.PersistentFlags().StringVar(&flags.outPath, "out", "", "output file path (default stdout)")

	cmd.AddCommand(newGenerateCandlesCommand(&flags))
	cmd.AddCommand(newGenerateTicksCommand(&flags))
	return cmd
}

func (f *generateFlags) buildConfig() (marketdata.GeneratorConfig, error) {
	b := presetBuilder(f.preset)
	b.StartingPrice(pricing.NewFromFloat(f.startingPrice, pricing.Zero()))
	b.NumPoints(f.numPoints)

	dir, err := parseTrendFlag(f.trend)
	if err != nil {
		return marketdata.GeneratorConfig{}, err
	}
	if dir != marketdata.Sideways || f.trendStrength != 0 {
		b.Trend(dir, decimal.NewFromFloat(f.trendStrength))
	}
	if f.volatility != 0 {
		b.Volatility(decimal.NewFromFloat(f.volatility))
	}
	if f.seed >= 0 {
		b.Seed(uint64(f.seed))
	}
	return b.Build()
}

func presetBuilder(preset string) *marketdata.ConfigBuilder {
	switch preset {
	case "volatile":
		return marketdata.Volatile()
	case "stable":
		return marketdata.Stable()
	case "bull":
		return marketdata.BullMarket()
	case "bear":
		return marketdata.BearMarket()
	default:
		return marketdata.NewConfigBuilder()
	}
}

func parseTrendFlag(s string) (marketdata.TrendDirection, error) {
	switch s {
	case "bullish":
		return marketdata.Bullish, nil
	case "bearish":
		return marketdata.Bearish, nil
	case "sideways", "":
		return marketdata.Sideways, nil
	default:
		return marketdata.Sideways, fmt.Errorf("unknown --trend value: %s", s)
	}
}

func (f *generateFlags) openSink() (*os.File, func(), error) {
	if f.outPath == "" {
		return os.Stdout, func() {}, nil
	}
	file, err := os.Create(f.outPath)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { _ = file.Close() }, nil
}

func newGenerateCandlesCommand(flags *generateFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "candles",
		Short: "Generate a series of OHLC candles",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.buildConfig()
			if err != nil {
				return err
			}
			gen, err := generator.NewWithConfig(cfg)
			if err != nil {
				return err
			}
			candles, err := gen.GenerateSeries(int(cfg.NumPoints))
			if err != nil {
				return err
			}
			sink, closeFn, err := flags.openSink()
			if err != nil {
				return err
			}
			defer closeFn()
			return exportCandles(flags.format, candles, sink)
		},
	}
}

func newGenerateTicksCommand(flags *generateFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ticks",
		Short: "Generate a series of ticks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.buildConfig()
			if err != nil {
				return err
			}
			gen, err := generator.NewWithConfig(cfg)
			if err != nil {
				return err
			}
			ticks := gen.GenerateTicks(int(cfg.NumPoints))
			sink, closeFn, err := flags.openSink()
			if err != nil {
				return err
			}
			defer closeFn()
			return exportTicks(flags.format, ticks, sink)
		},
	}
}

func exportCandles(format string, candles []marketdata.OHLC, sink *os.File) error {
	switch format {
	case "json":
		return export.NewJSON().ExportOHLC(context.Background(), candles, sink)
	case "jsonl":
		return (&export.JSON{Options: export.JSONOptions{JSONLines: true}}).ExportOHLC(context.Background(), candles, sink)
	default:
		return export.NewCSV().ExportOHLC(context.Background(), candles, sink)
	}
}

func exportTicks(format string, ticks []marketdata.Tick, sink *os.File) error {
	switch format {
	case "json":
		return export.NewJSON().ExportTicks(context.Background(), ticks, sink)
	case "jsonl":
		return (&export.JSON{Options: export.JSONOptions{JSONLines: true}}).ExportTicks(context.Background(), ticks, sink)
	default:
		return export.NewCSV().ExportTicks(context.Background(), ticks, sink)
	}
}
