// Copyright 2025 go-lens Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lensmodel

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrNoComponents is returned by New for an empty component list.
	ErrNoComponents = errors.New("lensmodel: no components")
	// ErrShapeMismatch is returned when x and y differ in length.
	ErrShapeMismatch = errors.New("lensmodel: x and y lengths differ")
)

// Model is a sum of lens components.
type Model struct {
	components  []Component
	logger      *zap.Logger
	concurrency int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithConcurrency bounds the number of components evaluated at once.
// n <= 0 means runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.concurrency = n
		}
	}
}

// New returns a Model over components.
func New(components []Component, opts ...Option) (*Model, error) {
	if len(components) == 0 {
		return nil, ErrNoComponents
	}
	m := &Model{
		components:  append([]Component(nil), components...),
		logger:      zap.NewNop(),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Components returns the profile names of the model's components in order.
func (m *Model) Components() []string {
	names := make([]string, len(m.components))
	for i, c := range m.components {
		names[i] = c.Name()
	}
	return names
}

// Potential returns the summed lensing potential.
func (m *Model) Potential(ctx context.Context, x, y []float64) ([]float64, error) {
	out, err := m.sum(ctx, "potential", x, y, 1, func(c Component) [][]float64 {
		return [][]float64{c.Function(x, y)}
	})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// Alpha returns the summed deflection angles.
func (m *Model) Alpha(ctx context.Context, x, y []float64) (ax, ay []float64, err error) {
	out, err := m.sum(ctx, "alpha", x, y, 2, func(c Component) [][]float64 {
		fx, fy := c.Derivatives(x, y)
		return [][]float64{fx, fy}
	})
	if err != nil {
		return nil, nil, err
	}
	return out[0], out[1], nil
}

// Hessian returns the summed second derivatives of the potential.
func (m *Model) Hessian(ctx context.Context, x, y []float64) (fxx, fxy, fyx, fyy []float64, err error) {
	out, err := m.sum(ctx, "hessian", x, y, 4, func(c Component) [][]float64 {
		a, b, c2, d := c.Hessian(x, y)
		return [][]float64{a, b, c2, d}
	})
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return out[0], out[1], out[2], out[3], nil
}

// Kappa returns the convergence (f_xx + f_yy)/2.
func (m *Model) Kappa(ctx context.Context, x, y []float64) ([]float64, error) {
	fxx, _, _, fyy, err := m.Hessian(ctx, x, y)
	if err != nil {
		return nil, err
	}
	floats.Add(fxx, fyy)
	floats.Scale(0.5, fxx)
	return fxx, nil
}

// Gamma returns the shear components ((f_xx − f_yy)/2, f_xy).
func (m *Model) Gamma(ctx context.Context, x, y []float64) (gamma1, gamma2 []float64, err error) {
	fxx, fxy, _, fyy, err := m.Hessian(ctx, x, y)
	if err != nil {
		return nil, nil, err
	}
	floats.Sub(fxx, fyy)
	floats.Scale(0.5, fxx)
	return fxx, fxy, nil
}

// Magnification returns 1/det(I − H). It is ±Inf on critical curves.
func (m *Model) Magnification(ctx context.Context, x, y []float64) ([]float64, error) {
	fxx, fxy, fyx, fyy, err := m.Hessian(ctx, x, y)
	if err != nil {
		return nil, err
	}
	mu := make([]float64, len(fxx))
	for i := range mu {
		det := (1-fxx[i])*(1-fyy[i]) - fxy[i]*fyx[i]
		mu[i] = 1 / det
	}
	return mu, nil
}

// RayShoot maps image-plane positions to the source plane, β = θ − α(θ).
func (m *Model) RayShoot(ctx context.Context, x, y []float64) (bx, by []float64, err error) {
	ax, ay, err := m.Alpha(ctx, x, y)
	if err != nil {
		return nil, nil, err
	}
	floats.SubTo(ax, x, ax)
	floats.SubTo(ay, y, ay)
	return ax, ay, nil
}

// sum evaluates fn for every component and adds the k returned slices
// element-wise, in component order.
func (m *Model) sum(ctx context.Context, op string, x, y []float64, k int, fn func(Component) [][]float64) ([][]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%s: len(x)=%d, len(y)=%d: %w", op, len(x), len(y), ErrShapeMismatch)
	}
	start := time.Now()

	parts := make([][][]float64, len(m.components))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)
	for i, c := range m.components {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parts[i] = fn(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		m.logger.Debug("evaluation cancelled", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([][]float64, k)
	for j := range out {
		out[j] = make([]float64, len(x))
		for _, p := range parts {
			floats.Add(out[j], p[j])
		}
	}

	m.logger.Debug("evaluated",
		zap.String("op", op),
		zap.Int("points", len(x)),
		zap.Int("components", len(m.components)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}
