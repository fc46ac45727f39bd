package covariance_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hesscov/covariance"
	"github.com/katalvlaran/hesscov/hessian"
	"github.com/katalvlaran/hesscov/matrix"
)

var (
	covTrue = [][]float64{
		{400, 0.2, 0.1},
		{0.2, 2, 0.2},
		{0.1, 0.2, 1},
	}
	xMean = []float64{1, 2, 3}
)

// gaussian returns f = exp(−½ χ²) with χ² = (x−μ)ᵀ Σ⁻¹ (x−μ).
func gaussian(t *testing.T) hessian.Func {
	t.Helper()

	sigma := mat.NewDense(3, 3, nil)
	for i := range covTrue {
		sigma.SetRow(i, covTrue[i])
	}
	var prec mat.Dense
	require.NoError(t, prec.Inverse(sigma))

	return hessian.Pure(func(x []float64) float64 {
		d := mat.NewVecDense(3, []float64{x[0] - xMean[0], x[1] - xMean[1], x[2] - xMean[2]})

		return math.Exp(-0.5 * mat.Inner(d, &prec, d))
	})
}

func inverters() map[string]covariance.Inverter {
	return map[string]covariance.Inverter{
		"gonum":     covariance.GonumInverter{},
		"doolittle": covariance.DoolittleInverter{},
	}
}

func TestEstimate_RecoversGaussianCovariance(t *testing.T) {
	t.Parallel()

	want, err := matrix.NewDenseFromRows(covTrue)
	require.NoError(t, err)

	for name, inv := range inverters() {
		inv := inv
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cov, err := covariance.Estimate(gaussian(t), xMean, hessian.Uniform(1e-3),
				covariance.WithInverter(inv))
			require.NoError(t, err)

			frac, err := matrix.FracDiff(cov, want)
			require.NoError(t, err)
			worst, err := matrix.MaxAbs(frac)
			require.NoError(t, err)
			assert.Less(t, worst, 1e-2)
			require.NoError(t, matrix.ValidateSymmetric(cov, 1e-9))
		})
	}
}

func TestEstimate_InvertersAgree(t *testing.T) {
	t.Parallel()

	g, err := covariance.Estimate(gaussian(t), xMean, hessian.Uniform(1e-3))
	require.NoError(t, err)
	d, err := covariance.Estimate(gaussian(t), xMean, hessian.Uniform(1e-3),
		covariance.WithInverter(covariance.DoolittleInverter{}))
	require.NoError(t, err)

	ok, err := matrix.AllClose(g, d, 1e-8, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok, "gonum:\n%v\ndoolittle:\n%v", g, d)
}

func TestEstimate_ConstantObjectiveIsSingular(t *testing.T) {
	t.Parallel()

	flat := hessian.Pure(func([]float64) float64 { return 3 })

	for name, inv := range inverters() {
		inv := inv
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cov, err := covariance.Estimate(flat, []float64{0, 0}, hessian.Uniform(1e-3),
				covariance.WithInverter(inv))
			assert.Nil(t, cov)
			assert.ErrorIs(t, err, covariance.ErrSingular)
			assert.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestGonumInverter_ConditionReachable(t *testing.T) {
	t.Parallel()

	H, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 4}})
	require.NoError(t, err)

	_, err = covariance.GonumInverter{}.Invert(H)
	require.ErrorIs(t, err, covariance.ErrSingular)
	var cond mat.Condition
	require.True(t, errors.As(err, &cond))
	assert.Greater(t, float64(cond), mat.ConditionTolerance)
}

// brokenReads is a Matrix whose element reads fail.
type brokenReads struct{ *matrix.Dense }

var errRead = errors.New("read failed")

func (brokenReads) At(int, int) (float64, error) { return 0, errRead }

func TestGonumInverter_GenericMatrix(t *testing.T) {
	t.Parallel()

	H, err := matrix.NewDenseFromRows([][]float64{{-4, 0}, {0, -0.5}})
	require.NoError(t, err)

	inv, err := covariance.GonumInverter{}.Invert(hiddenDense{H})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-0.25, 0, 0, -2}, inv.RowMajor(), 1e-12)

	_, err = covariance.GonumInverter{}.Invert(brokenReads{H})
	assert.ErrorIs(t, err, errRead)
	assert.NotErrorIs(t, err, covariance.ErrSingular)
}

// hiddenDense forces the At path by hiding the concrete *matrix.Dense.
type hiddenDense struct{ m *matrix.Dense }

func (h hiddenDense) Rows() int { return h.m.Rows() }
func (h hiddenDense) Cols() int { return h.m.Cols() }
func (h hiddenDense) At(i, j int) (float64, error) { return h.m.At(i, j) }
func (h hiddenDense) Set(i, j int, v float64) error { return h.m.Set(i, j, v) }
func (h hiddenDense) Clone() matrix.Matrix { return hiddenDense{h.m.Clone().(*matrix.Dense)} }

func TestInverters_ZeroLeadingPivot(t *testing.T) {
	t.Parallel()

	// Invertible, but Doolittle without pivoting hits a zero on the diagonal.
	H, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	cov, err := covariance.FromHessian(H, covariance.GonumInverter{})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -1, -1, 0}, roundAll(cov.RowMajor()))

	_, err = covariance.FromHessian(H, covariance.DoolittleInverter{})
	assert.ErrorIs(t, err, covariance.ErrSingular)
}

func TestFromHessian_DiagonalAndInputUntouched(t *testing.T) {
	t.Parallel()

	H, err := matrix.NewDenseFromRows([][]float64{{-4, 0}, {0, -0.5}})
	require.NoError(t, err)

	cov, err := covariance.FromHessian(H, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0, 0, 2}, roundAll(cov.RowMajor()))
	assert.Equal(t, []float64{-4, 0, 0, -0.5}, H.RowMajor())

	_, err = covariance.FromHessian(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = covariance.FromHessian(rect, covariance.DoolittleInverter{})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = covariance.FromHessian(rect, covariance.GonumInverter{})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestEstimate_PropagatesHessianErrors(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("model blew up")
	f := func([]float64) (float64, error) { return 0, errBoom }
	_, err := covariance.Estimate(f, []float64{1}, hessian.Uniform(1e-3))
	assert.Same(t, errBoom, err)

	_, err = covariance.Estimate(hessian.Pure(func([]float64) float64 { return 0 }),
		[]float64{1, 2}, hessian.PerAxis(1e-3))
	assert.ErrorIs(t, err, hessian.ErrInvalidDimension)
}

func TestEstimate_ForwardsHessianOptions(t *testing.T) {
	t.Parallel()

	var st hessian.Stats
	_, err := covariance.Estimate(gaussian(t), xMean, hessian.Uniform(1e-3),
		covariance.WithHessianOptions(hessian.WithMemo(), hessian.WithStats(&st)))
	require.NoError(t, err)
	assert.Equal(t, 3, st.Dim)
	assert.Equal(t, 2, st.CacheHits)
	assert.Equal(t, 3*3+2*3*2-2, st.Evaluations)
}

func TestInverterByName(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		want covariance.Inverter
	}{
		{"", covariance.GonumInverter{}},
		{"gonum", covariance.GonumInverter{}},
		{" Doolittle ", covariance.DoolittleInverter{}},
	} {
		got, err := covariance.InverterByName(tc.name)
		require.NoError(t, err, tc.name)
		assert.IsType(t, tc.want, got, tc.name)
	}

	_, err := covariance.InverterByName("cholesky")
	assert.ErrorIs(t, err, covariance.ErrUnknownInverter)
	assert.Contains(t, err.Error(), `"cholesky"`)
}

// roundAll snaps values to 12 decimals so exact-equality assertions ignore
// last-bit noise from the inverse.
func roundAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = math.Round(v*1e12) / 1e12
		if out[i] == 0 {
			out[i] = 0 // fold −0
		}
	}

	return out
}

func TestEigenvalues_SortedAndPositiveForGaussian(t *testing.T) {
	t.Parallel()

	cov, err := covariance.Estimate(gaussian(t), xMean, hessian.Uniform(1e-3),
		covariance.WithPositiveDefiniteCheck())
	require.NoError(t, err)

	vals, err := covariance.CheckPositiveDefinite(cov)
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.True(t, vals[0] <= vals[1] && vals[1] <= vals[2], "%v", vals)
	assert.Greater(t, vals[0], 0.0)
	// trace is preserved: 400 + 2 + 1
	assert.InDelta(t, 403, vals[0]+vals[1]+vals[2], 1e-3)
}

func TestCheckPositiveDefinite_SaddleRejected(t *testing.T) {
	t.Parallel()

	// ln p = −x² + y²: a saddle, H = diag(−2, 2), cov = diag(0.5, −0.5).
	saddle := hessian.Pure(func(x []float64) float64 { return -x[0]*x[0] + x[1]*x[1] })

	cov, err := covariance.Estimate(saddle, []float64{0, 0}, hessian.Uniform(1e-2))
	require.NoError(t, err, "without the check the indefinite result is returned")
	vals, err := covariance.CheckPositiveDefinite(cov)
	assert.ErrorIs(t, err, covariance.ErrNotPositiveDefinite)
	assert.InDelta(t, -0.5, vals[0], 1e-9)

	_, err = covariance.Estimate(saddle, []float64{0, 0}, hessian.Uniform(1e-2),
		covariance.WithPositiveDefiniteCheck())
	assert.ErrorIs(t, err, covariance.ErrNotPositiveDefinite)
}

func TestEigenvalues_Errors(t *testing.T) {
	t.Parallel()

	_, err := covariance.Eigenvalues(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	asym, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {0, 1}})
	require.NoError(t, err)
	_, err = covariance.Eigenvalues(asym)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
}
