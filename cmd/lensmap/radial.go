package main

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-lens/grid"
	"github.com/ajroetker/go-lens/lensmodel"
)

func (a *app) radialCmd() *cobra.Command {
	var (
		names   []string
		rMax    float64
		samples int
		out     string
	)
	cmd := &cobra.Command{
		Use:     "radial",
		Short:   "Plot quantities along the +x axis as an HTML line chart",
		Example: `  lensmap radial -c model.yaml --quantity kappa,alpha --rmax 3 --out profile.html`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, m, err := a.loadModel()
			if err != nil {
				return err
			}
			if rMax <= 0 {
				rMax = float64(cfg.Grid.NumPix) * cfg.Grid.PixelScale / 2
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			var buf bytes.Buffer
			if err := renderRadial(ctx, &buf, m, names, rMax, samples); err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			a.logger.Info("wrote radial chart", zap.String("path", out), zap.Strings("quantities", names))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&names, "quantity", "q", []string{"kappa", "alpha"}, "Quantities to plot")
	cmd.Flags().Float64Var(&rMax, "rmax", 0, "Largest radius (default: half the grid width)")
	cmd.Flags().IntVarP(&samples, "samples", "n", 200, "Number of radii")
	cmd.Flags().StringVarP(&out, "out", "o", "radial.html", "Output HTML file")
	return cmd
}

func renderRadial(ctx context.Context, buf *bytes.Buffer, m *lensmodel.Model, names []string, rMax float64, n int) error {
	if n < 1 {
		return fmt.Errorf("need at least one sample, got %d", n)
	}
	x, y := grid.Radial(rMax, n)
	labels := make([]string, n)
	for i, r := range x {
		labels[i] = strconv.FormatFloat(r, 'g', 4, 64)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Radial Profile", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Radial Profile", Subtitle: fmt.Sprintf("components=%v samples=%d", m.Components(), n)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "r", NameLocation: "middle", NameGap: 25}),
	)
	line.SetXAxis(labels)

	for _, name := range names {
		values, err := evaluate(ctx, m, name, x, y)
		if err != nil {
			return err
		}
		data := make([]opts.LineData, len(values))
		for i, v := range values {
			// JSON has no Inf or NaN; a nil value leaves a gap in the line
			if math.IsInf(v, 0) || math.IsNaN(v) {
				continue
			}
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(title(name), data)
	}
	return line.Render(buf)
}
