package main

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-lens/internal/config"
	"github.com/ajroetker/go-lens/lensmodel"
)

// quantities maps a quantity name to its evaluation on a model.
// Values are method expressions, so the model comes first.
var quantities = map[string]func(*lensmodel.Model, context.Context, []float64, []float64) ([]float64, error){
	"potential":     (*lensmodel.Model).Potential,
	"kappa":         (*lensmodel.Model).Kappa,
	"magnification": (*lensmodel.Model).Magnification,
	"alpha":         alphaAbs,
	"gamma":         gammaAbs,
}

func alphaAbs(m *lensmodel.Model, ctx context.Context, x, y []float64) ([]float64, error) {
	ax, ay, err := m.Alpha(ctx, x, y)
	return hypot(ax, ay), err
}

func gammaAbs(m *lensmodel.Model, ctx context.Context, x, y []float64) ([]float64, error) {
	g1, g2, err := m.Gamma(ctx, x, y)
	return hypot(g1, g2), err
}

var titles = map[string]string{
	"potential":     "lensing potential",
	"kappa":         "convergence",
	"magnification": "magnification",
	"alpha":         "deflection angle",
	"gamma":         "shear",
}

func quantityNames() []string {
	names := make([]string, 0, len(quantities))
	for name := range quantities {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func evaluate(ctx context.Context, m *lensmodel.Model, name string, x, y []float64) ([]float64, error) {
	fn, ok := quantities[name]
	if !ok {
		return nil, fmt.Errorf("unknown quantity %q (want one of %s)", name, strings.Join(quantityNames(), ", "))
	}
	return fn(m, ctx, x, y)
}

func title(name string) string {
	return cases.Title(language.English).String(titles[name])
}

func hypot(a, b []float64) []float64 {
	if a == nil {
		return nil
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = math.Hypot(a[i], b[i])
	}
	return out
}

func (a *app) loadModel() (*config.Config, *lensmodel.Model, error) {
	if a.configPath == "" {
		return nil, nil, fmt.Errorf("--config is required")
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, nil, err
	}
	m, err := cfg.Build(a.logger)
	if err != nil {
		return nil, nil, err
	}
	return cfg, m, nil
}
