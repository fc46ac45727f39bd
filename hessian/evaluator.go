package hessian

import (
	"encoding/binary"
	"math"
)

// evaluator owns the scratch point handed to the objective and, when memo
// is on, the cache of already seen coordinate vectors.
type evaluator struct {
	f     Func
	base  []float64 // unperturbed point, read-only
	work  []float64 // scratch passed to f
	memo  map[string]float64
	key   []byte
	stats Stats
}

func newEvaluator(f Func, base []float64, memo bool) *evaluator {
	e := &evaluator{
		f:    f,
		base: base,
		work: make([]float64, len(base)),
	}
	e.stats.Dim = len(base)
	if memo {
		e.memo = make(map[string]float64)
		e.key = make([]byte, 0, 8*len(base))
	}

	return e
}

// at evaluates f at base with axis i shifted by di and axis j shifted by dj.
// Pass j < 0 for a single-axis shift; di == 0 and j < 0 is the base point,
// handed over bit for bit (a −0 coordinate stays −0).
// The scratch is rebuilt from base on every call, so an objective that
// writes into its argument cannot leak into later evaluations.
func (e *evaluator) at(i int, di float64, j int, dj float64) (float64, error) {
	copy(e.work, e.base)
	if di != 0 {
		e.work[i] += di
	}
	if j >= 0 && dj != 0 {
		e.work[j] += dj
	}

	if e.memo == nil {
		e.stats.Evaluations++

		return e.f(e.work)
	}

	e.key = e.key[:0]
	for _, v := range e.work {
		e.key = binary.LittleEndian.AppendUint64(e.key, math.Float64bits(v))
	}
	if v, ok := e.memo[string(e.key)]; ok {
		e.stats.CacheHits++

		return v, nil
	}
	k := string(e.key)
	e.stats.Evaluations++
	v, err := e.f(e.work)
	if err != nil {
		return 0, err
	}
	e.memo[k] = v

	return v, nil
}
