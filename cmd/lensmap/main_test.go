package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lens/lensmodel"
	"github.com/ajroetker/go-lens/profiles"
)

const testModel = `lenses:
  - profile: GAUSSIAN
    amp: 1
    sigma: 1
  - profile: SIS
    theta_e: 0.5
grid:
  num_pix: 16
  pixel_scale: 0.25
`

func writeModel(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testModel), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvalPoints(t *testing.T) {
	out, err := run(t, "eval", "-c", writeModel(t), "-q", "kappa", "--x", "1,2", "--y", "0,0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "x\ty\tkappa", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1\t0\t"))
}

func TestEvalSummary(t *testing.T) {
	out, err := run(t, "eval", "-c", writeModel(t), "-q", "alpha")
	require.NoError(t, err)
	assert.Contains(t, out, "alpha over 16×16 grid")
}

func TestEvalErrors(t *testing.T) {
	_, err := run(t, "eval", "-q", "kappa")
	assert.ErrorContains(t, err, "--config is required")

	_, err = run(t, "eval", "-c", writeModel(t), "-q", "nope", "--x", "1", "--y", "1")
	assert.ErrorContains(t, err, `unknown quantity "nope"`)

	_, err = run(t, "eval", "-c", writeModel(t), "--x", "1,2", "--y", "1")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "render", "-c", writeModel(t), "-q", "kappa,magnification", "--log", "-o", dir, "--size", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "kappa.png")

	for _, name := range []string{"kappa.png", "magnification.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestRadial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radial.html")
	_, err := run(t, "radial", "-c", writeModel(t), "-q", "kappa,magnification", "-n", "50", "-o", path)
	require.NoError(t, err)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Radial Profile")
	assert.Contains(t, string(body), "Convergence")
}

func TestCPUInfo(t *testing.T) {
	out, err := run(t, "cpuinfo")
	require.NoError(t, err)
	assert.Contains(t, out, "Dispatch level:")
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Deflection Angle", title("alpha"))
	assert.Equal(t, "Convergence", title("kappa"))
}

func TestEvaluateAlphaMagnitude(t *testing.T) {
	m, err := lensmodel.New([]lensmodel.Component{lensmodel.NewSIS(profiles.SISParams{ThetaE: 2})})
	require.NoError(t, err)

	v, err := evaluate(context.Background(), m, "alpha", []float64{3, 0}, []float64{4, -1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 2}, v, 1e-12)
}

func TestEvaluateEveryQuantity(t *testing.T) {
	m, err := lensmodel.New([]lensmodel.Component{
		lensmodel.NewGaussian(profiles.Gaussian{}, profiles.GaussianParams{Amp: 1, Sigma: 1}),
		lensmodel.NewSIS(profiles.SISParams{ThetaE: 0.5}),
	})
	require.NoError(t, err)

	x, y := []float64{0.7, -1.2}, []float64{0.3, 2}
	kappa, err := m.Kappa(context.Background(), x, y)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "gamma", "kappa", "magnification", "potential"}, quantityNames())
	for _, name := range quantityNames() {
		v, err := evaluate(context.Background(), m, name, x, y)
		require.NoError(t, err, name)
		assert.Len(t, v, len(x), name)
		assert.NotEmpty(t, title(name), name)
	}

	v, err := evaluate(context.Background(), m, "kappa", x, y)
	require.NoError(t, err)
	assert.Equal(t, kappa, v)
}
