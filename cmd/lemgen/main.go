// Command lemgen drives the terrain-generation engine over a regular grid:
// build a Grid, set uniform or run-file attributes, run the fixed-point
// loop, and write the resulting elevations.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rivershed/lem/core"
	"github.com/rivershed/lem/gridmodel"
	"github.com/rivershed/lem/lem"
)

var (
	flagRows         int
	flagCols         int
	flagCellSize     float64
	flagUpliftRate   float64
	flagErodibility  float64
	flagBaseAltitude float64
	flagMaxSlopeDeg  float64
	flagMExp         float64
	flagMaxIteration int
	flagOutput       string
	flagRunFile      string
	flagVerbose      bool

	rootCmd = &cobra.Command{
		Use:   "lemgen",
		Short: "Generate synthetic terrain via coupled stream-tree and drainage-basin evolution",
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Run terrain generation to convergence or the iteration cap and write the resulting elevation grid",
		RunE:  runGenerate,
	}
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	flags := generateCmd.Flags()
	flags.IntVar(&flagRows, "rows", 64, "grid rows")
	flags.IntVar(&flagCols, "cols", 64, "grid columns")
	flags.Float64Var(&flagCellSize, "cell-size", 1.0, "distance between adjacent cell centers")
	flags.Float64Var(&flagUpliftRate, "uplift-rate", 1.0, "uniform uplift rate applied to every site")
	flags.Float64Var(&flagErodibility, "erodibility", 1.0, "uniform erodibility applied to every site")
	flags.Float64Var(&flagBaseAltitude, "base-altitude", 0.0, "initial elevation of every site")
	flags.Float64Var(&flagMaxSlopeDeg, "max-slope-deg", 0, "optional max-slope clamp in degrees (0 disables)")
	flags.Float64Var(&flagMExp, "m-exponent", 0.5, "stream-power area exponent m")
	flags.IntVar(&flagMaxIteration, "max-iteration", 0, "iteration cap (0 means run to convergence)")
	flags.StringVar(&flagOutput, "output", "-", "output path, or - for stdout")
	flags.StringVar(&flagRunFile, "file", "", "YAML run file; replaces the grid, attribute and max-iteration flags, and max-slope-deg, m-exponent and output where set")
	flags.BoolVar(&flagVerbose, "verbose", false, "enable debug-level logging of each fixed-point iteration")

	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("lemgen: run failed")
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	rows, cols, cellSize := flagRows, flagCols, flagCellSize
	uplift, erodibility, baseAltitude := flagUpliftRate, flagErodibility, flagBaseAltitude
	maxSlopeDeg, mExp, maxIteration, output := flagMaxSlopeDeg, flagMExp, flagMaxIteration, flagOutput

	if flagRunFile != "" {
		rc, err := loadRunConfig(flagRunFile)
		if err != nil {
			return fmt.Errorf("lemgen: loading run file: %w", err)
		}
		rows, cols, cellSize = rc.Rows, rc.Cols, rc.CellSize
		uplift, erodibility, baseAltitude = rc.UpliftRate, rc.Erodibility, rc.BaseAltitude
		if rc.MaxSlopeDeg != nil {
			maxSlopeDeg = *rc.MaxSlopeDeg
		}
		if rc.MExp != 0 {
			mExp = rc.MExp
		}
		maxIteration = rc.MaxIteration
		if rc.Output != "" {
			output = rc.Output
		}
	}

	outlets := gridmodel.BorderOutlets(rows, cols)
	grid, err := gridmodel.New(rows, cols, cellSize, outlets)
	if err != nil {
		return fmt.Errorf("lemgen: building grid: %w", err)
	}

	attr := core.Attributes{
		UpliftRate:   uplift,
		Erodibility:  erodibility,
		BaseAltitude: baseAltitude,
	}
	if maxSlopeDeg > 0 {
		attr = attr.WithMaxSlope(maxSlopeDeg * math.Pi / 180)
	}
	attributes := make([]core.Attributes, grid.Num())
	for i := range attributes {
		attributes[i] = attr
	}

	cfg := lem.Configuration[gridmodel.Terrain]{}.
		WithModel(grid).
		WithAttributes(attributes).
		WithExponentM(mExp)
	if maxIteration > 0 {
		cfg = cfg.WithMaxIteration(core.Step(maxIteration))
	}

	log.Info().Int("rows", rows).Int("cols", cols).Int("outlets", len(outlets)).Msg("lemgen: starting generation")

	terrain, err := cfg.Generate()
	if err != nil {
		return fmt.Errorf("lemgen: generating terrain: %w", err)
	}

	return writeTerrain(terrain, output)
}

// writeTerrain renders terrain as whitespace-separated rows of elevation
// values, one grid row per line, to path (or stdout when path is "-").
func writeTerrain(terrain gridmodel.Terrain, path string) error {
	var b strings.Builder
	for _, row := range terrain.Elevation {
		for c, v := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(v, 'f', 6, 64))
		}
		b.WriteByte('\n')
	}

	if path == "-" || path == "" {
		_, err := os.Stdout.WriteString(b.String())
		return err
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
