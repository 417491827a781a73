package sim

import "math"

// ResidualFunc evaluates the four market-clearing residuals at a candidate
// (output, interest rate, exchange rate, price level) point.
type ResidualFunc func(v [4]float64) [4]float64

// EquilibriumSolver is a damped Newton root finder for the per-period
// equilibrium system. It either converges within its iteration budget or
// reports failure; it never panics on numerical trouble.
type EquilibriumSolver struct {
	MaxIter int
	Tol     float64
}

func NewEquilibriumSolver() *EquilibriumSolver {
	return &EquilibriumSolver{MaxIter: 50, Tol: 1e-6}
}

// Solve iterates from guess until the residual max-norm drops below Tol.
// The second return value is false when the budget is exhausted, the
// Jacobian becomes singular, or any intermediate value stops being finite.
func (s *EquilibriumSolver) Solve(f ResidualFunc, guess [4]float64) ([4]float64, bool) {
	x := guess
	if !finite4(x) {
		return guess, false
	}

	fx := f(x)
	if !finite4(fx) {
		return guess, false
	}

	for iter := 0; iter < s.MaxIter; iter++ {
		if maxAbs(fx) < s.Tol {
			return x, true
		}

		jac, ok := s.jacobian(f, x, fx)
		if !ok {
			return guess, false
		}
		step, ok := solve4(jac, fx)
		if !ok {
			return guess, false
		}

		// Damped update: halve the step until the residual norm improves.
		norm := maxAbs(fx)
		improved := false
		scale := 1.0
		for k := 0; k < 8; k++ {
			var cand [4]float64
			for i := range cand {
				cand[i] = x[i] - scale*step[i]
			}
			fc := f(cand)
			if finite4(cand) && finite4(fc) && maxAbs(fc) < norm {
				x, fx = cand, fc
				improved = true
				break
			}
			scale /= 2
		}
		if !improved {
			// Stuck on a flat or inconsistent system.
			return guess, false
		}
	}

	if maxAbs(fx) < s.Tol {
		return x, true
	}
	return guess, false
}

// jacobian approximates ∂f/∂x by forward differences.
func (s *EquilibriumSolver) jacobian(f ResidualFunc, x, fx [4]float64) ([4][4]float64, bool) {
	var jac [4][4]float64
	for j := 0; j < 4; j++ {
		h := 1e-6 * (1 + math.Abs(x[j]))
		xp := x
		xp[j] += h
		fp := f(xp)
		if !finite4(fp) {
			return jac, false
		}
		for i := 0; i < 4; i++ {
			jac[i][j] = (fp[i] - fx[i]) / h
		}
	}
	return jac, true
}

// solve4 solves the 4x4 linear system a·x = b by Gaussian elimination with
// partial pivoting.
func solve4(a [4][4]float64, b [4]float64) ([4]float64, bool) {
	const eps = 1e-12

	for col := 0; col < 4; col++ {
		// Pivot.
		pivot := col
		for row := col + 1; row < 4; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < eps {
			return [4]float64{}, false
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		// Eliminate below.
		for row := col + 1; row < 4; row++ {
			factor := a[row][col] / a[col][col]
			for k := col; k < 4; k++ {
				a[row][k] -= factor * a[col][k]
			}
			b[row] -= factor * b[col]
		}
	}

	// Back substitution.
	var x [4]float64
	for row := 3; row >= 0; row-- {
		sum := b[row]
		for k := row + 1; k < 4; k++ {
			sum -= a[row][k] * x[k]
		}
		x[row] = sum / a[row][row]
	}
	if !finite4(x) {
		return x, false
	}
	return x, true
}

func maxAbs(v [4]float64) float64 {
	m := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}

func finite4(v [4]float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
