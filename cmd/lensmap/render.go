package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ajroetker/go-lens/grid"
	"github.com/ajroetker/go-lens/internal/config"
	"github.com/ajroetker/go-lens/lensmodel"
)

func (a *app) renderCmd() *cobra.Command {
	var (
		names  []string
		outDir string
		logMap bool
		size   float64
	)
	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Render quantity maps over the configured grid as PNG heat maps",
		Example: `  lensmap render -c model.yaml --quantity kappa,magnification --log --out maps/`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, m, err := a.loadModel()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			x, y := cfg.Coordinates()
			paths := make([]string, len(names))
			g, gctx := errgroup.WithContext(ctx)
			for i, name := range names {
				g.Go(func() error {
					path := filepath.Join(outDir, name+".png")
					if err := renderMap(gctx, m, cfg, name, x, y, logMap, vg.Length(size)*vg.Inch, path); err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					a.logger.Info("wrote map", zap.String("quantity", name), zap.String("path", path))
					paths[i] = path
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&names, "quantity", "q", []string{"kappa"}, "Quantities to render")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	cmd.Flags().BoolVar(&logMap, "log", false, "Plot log10 of the absolute value")
	cmd.Flags().Float64Var(&size, "size", 6, "Image size in inches")
	return cmd
}

func renderMap(ctx context.Context, m *lensmodel.Model, cfg *config.Config, name string, x, y []float64, logMap bool, size vg.Length, path string) error {
	values, err := evaluate(ctx, m, name, x, y)
	if err != nil {
		return err
	}
	for i, v := range values {
		if logMap {
			v = math.Log10(math.Abs(v))
		}
		// critical curves and the centre of a log map are left blank
		if math.IsInf(v, 0) {
			v = math.NaN()
		}
		values[i] = v
	}

	p := plot.New()
	p.Title.Text = title(name)
	if logMap {
		p.Title.Text = "Log " + p.Title.Text
	}
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	hm := plotter.NewHeatMap(newPixelMap(grid.ToDense(values, cfg.Grid.NumPix), cfg.Grid.PixelScale), palette.Heat(32, 1))
	switch {
	case math.IsInf(hm.Min, 0) || math.IsInf(hm.Max, 0):
		hm.Min, hm.Max = 0, 1
	case hm.Max <= hm.Min:
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	return p.Save(size, size, path)
}

// pixelMap adapts a row-major pixel matrix to plotter.GridXYZ.
type pixelMap struct {
	m     *mat.Dense
	scale float64
	shift float64
}

func newPixelMap(m *mat.Dense, scale float64) pixelMap {
	r, _ := m.Dims()
	return pixelMap{m: m, scale: scale, shift: float64(r-1) / 2}
}

func (p pixelMap) Dims() (c, r int) {
	r, c = p.m.Dims()
	return c, r
}

func (p pixelMap) Z(c, r int) float64 { return p.m.At(r, c) }
func (p pixelMap) X(c int) float64    { return (float64(c) - p.shift) * p.scale }
func (p pixelMap) Y(r int) float64    { return (float64(r) - p.shift) * p.scale }
