package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

func (a *app) evalCmd() *cobra.Command {
	var (
		quantity string
		xs, ys   []float64
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a quantity at given points or summarise it over the grid",
		Example: `  lensmap eval -c model.yaml --quantity kappa --x 0.5,1 --y 0,0
  lensmap eval -c model.yaml --quantity magnification`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(xs) != len(ys) {
				return fmt.Errorf("--x has %d values, --y has %d", len(xs), len(ys))
			}
			cfg, m, err := a.loadModel()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			summarise := len(xs) == 0
			if summarise {
				xs, ys = cfg.Coordinates()
			}
			values, err := evaluate(ctx, m, quantity, xs, ys)
			if err != nil {
				return err
			}
			a.logger.Debug("evaluated", zap.String("quantity", quantity), zap.Int("points", len(values)))

			out := cmd.OutOrStdout()
			if summarise {
				fmt.Fprintf(out, "%s over %d×%d grid: min=%.6g max=%.6g mean=%.6g\n",
					quantity, cfg.Grid.NumPix, cfg.Grid.NumPix,
					floats.Min(values), floats.Max(values), floats.Sum(values)/float64(len(values)))
				return nil
			}
			fmt.Fprintf(out, "x\ty\t%s\n", quantity)
			for i, v := range values {
				fmt.Fprintf(out, "%g\t%g\t%.12g\n", xs[i], ys[i], v)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&quantity, "quantity", "q", "kappa", "Quantity: "+strings.Join(quantityNames(), ", "))
	cmd.Flags().Float64SliceVar(&xs, "x", nil, "x coordinates")
	cmd.Flags().Float64SliceVar(&ys, "y", nil, "y coordinates")
	return cmd
}
