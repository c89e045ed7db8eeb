// Package weight builds the offspring-law weight vector and preprocesses
// it into the conditional-binomial probabilities the balls-in-boxes
// sampler draws from, grounded on
// _examples/original_source/src/rand/ballsinboxes.h::threadedbinb.
package weight

import (
	"fmt"
	"math/big"

	apperrors "github.com/benediktstufler/grant/pkg/errors"
)

// DefaultPrecision is the working precision (in bits) used when the
// caller does not override it, comfortably above spec.md §5's "≥ 200
// bits" floor.
const DefaultPrecision uint = 256

// PrecisionThreshold bounds how far a conditional probability q[i] may
// exceed 1 before preprocessing gives up and reports a precision error,
// matching threadedbinb's "q[i] > 1.1" guard: a well-conditioned
// computation should never see q[i] stray far past 1, so a value that
// does signals the working precision is too low for this weight vector.
const PrecisionThreshold = 0.1

// Vector is a size-conditioned offspring weight vector normalized to sum
// to 1, held at extended precision until the conditional-binomial
// preprocessing step below is done with it.
type Vector struct {
	Prec uint
	W    []*big.Float
}

// Build evaluates provider at n boxes (offspring counts 0..n-1) at the
// given working precision.
func Build(provider Provider, n int, prec uint) (*Vector, error) {
	if prec == 0 {
		prec = DefaultPrecision
	}
	w, err := provider.Weights(n, prec)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodePrecisionError, "building weight vector", err)
	}
	return &Vector{Prec: prec, W: w}, nil
}

// Preprocess computes the conditional-binomial probability vector
//
//	q[i] = w[i] / (S - sum_{j<i} w[j])
//
// used by the balls-in-boxes sampler to place n-1 balls into n boxes one
// index at a time, each conditioned on all the mass not yet placed in an
// earlier box. This is threadedbinb's precision-critical prefix-sum loop,
// the reason the weight vector is kept at extended precision right up
// until this point: S - prefix can get arbitrarily close to zero for the
// heavy-tailed laws this sampler targets, and an under-precise sum there
// turns into a q[i] that silently exceeds 1.
func (v *Vector) Preprocess() ([]float64, error) {
	n := len(v.W)
	if n == 0 {
		return nil, apperrors.New(apperrors.CodePrecisionError, "empty weight vector")
	}

	left := new(big.Float).SetPrec(v.Prec)
	for _, w := range v.W {
		left.Add(left, w)
	}

	q := make([]float64, n)
	for i, w := range v.W {
		if left.Sign() <= 0 {
			return nil, apperrors.New(apperrors.CodePrecisionError,
				fmt.Sprintf("remaining mass nonpositive before box %d", i))
		}
		qi := new(big.Float).SetPrec(v.Prec).Quo(w, left)
		f, _ := qi.Float64()
		if f > 1.0+PrecisionThreshold {
			return nil, apperrors.New(apperrors.CodePrecisionError,
				fmt.Sprintf("conditional probability q[%d]=%f exceeds 1+%.2f: insufficient working precision", i, f, PrecisionThreshold))
		}
		if f > 1.0 {
			f = 1.0
		}
		if f < 0.0 {
			f = 0.0
		}
		q[i] = f
		left.Sub(left, w)
	}
	return q, nil
}
