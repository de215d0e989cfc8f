// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charts

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// LinearLeastSquares computes the least squares fit for the function
//
//	f(x) = Β₀terms₀(x) + Β₁terms₁(x) + ...
//
// to the data (xs[i], ys[i]). It returns the parameters Β₀, Β₁, ...
// that minimize the sum of the squares of the residuals of f:
//
//	∑ (ys[i] - f(xs[i]))²
//
// Each term is a Go function that fills termOut with the value of the
// term at each x in xs.
//
// The caller must make sure the problem is well posed: there must be
// at least as many distinct xs as terms.
func LinearLeastSquares(xs, ys []float64, terms ...func(xs, termOut []float64)) (params []float64) {
	// The optimal parameters solve the normal equations
	//
	//    (𝐗ᵀ𝐗)Β̂ = 𝐗ᵀ𝐲

	if len(xs) != len(ys) {
		panic("len(xs) != len(ys)")
	}

	// Construct 𝐗ᵀ. This is the more convenient representation
	// for calling the term functions.
	xTVals := make([]float64, len(terms)*len(xs))
	for i, term := range terms {
		term(xs, xTVals[i*len(xs):i*len(xs)+len(xs)])
	}
	XT := mat64.NewDense(len(terms), len(xs), xTVals)
	X := XT.T()

	y := mat64.NewVector(len(ys), ys)

	lhs := mat64.NewDense(len(terms), len(terms), nil)
	lhs.Mul(XT, X)

	rhs := mat64.NewVector(len(terms), nil)
	rhs.MulVec(XT, y)

	BVals := make([]float64, len(terms))
	B := mat64.NewVector(len(terms), BVals)
	B.SolveVec(lhs, rhs)
	return BVals
}

// PolynomialRegression performs a least squares regression with a
// polynomial of the given degree. It returns the coefficients of the
// best-fit polynomial, constant term first.
func PolynomialRegression(degree int, xs, ys []float64) (coefficients []float64) {
	terms := make([]func(xs, termOut []float64), degree+1)
	for k := range terms {
		pow := float64(k)
		terms[k] = func(xs, termOut []float64) {
			for i, x := range xs {
				termOut[i] = math.Pow(x, pow)
			}
		}
	}
	return LinearLeastSquares(xs, ys, terms...)
}

// Trend is a fitted straight line y = Intercept + Slope·x.
type Trend struct {
	Intercept, Slope float64
}

// At returns the trend's value at x.
func (t Trend) At(x float64) float64 {
	return t.Intercept + t.Slope*x
}

// FitTrend fits a straight line to the points (xs[i], ys[i]),
// ignoring points with a NaN or infinite coordinate. It returns false
// if there are fewer than two distinct xs.
func FitTrend(xs, ys []float64) (Trend, bool) {
	var fx, fy []float64
	for i := range xs {
		if bad(xs[i]) || bad(ys[i]) {
			continue
		}
		fx = append(fx, xs[i])
		fy = append(fy, ys[i])
	}
	distinct := false
	for _, x := range fx {
		if x != fx[0] {
			distinct = true
			break
		}
	}
	if !distinct {
		return Trend{}, false
	}
	b := PolynomialRegression(1, fx, fy)
	t := Trend{Intercept: b[0], Slope: b[1]}
	if bad(t.Intercept) || bad(t.Slope) {
		return Trend{}, false
	}
	return t, true
}

func bad(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
