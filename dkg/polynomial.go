package dkg

import (
	"fmt"
	"io"

	"github.com/dvshur/pedersen-curve25519-keygen/group"
)

// Polynomial is a polynomial over the scalar field with a party's
// secret as its constant term. Coefficients never leave the owning
// party; only the verification vector derived from them is published.
type Polynomial struct {
	group  group.Group
	coeffs []group.Scalar
}

// RandomPolynomial builds a polynomial of the given degree with
// coeff[0] = secret and all higher coefficients drawn uniformly at
// random from the scalar field. The secret is copied, not aliased.
// A randomness failure is wrapped in ErrGeneration and is fatal.
func RandomPolynomial(g group.Group, r io.Reader, secret group.Scalar, degree int) (*Polynomial, error) {
	if degree < 0 {
		return nil, fmt.Errorf("degree must be non-negative, got %d", degree)
	}

	coeffs := make([]group.Scalar, degree+1)
	coeffs[0] = g.NewScalar().Set(secret)
	for i := 1; i < len(coeffs); i++ {
		c, err := g.RandomScalar(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
		}
		coeffs[i] = c
	}

	return &Polynomial{group: g, coeffs: coeffs}, nil
}

// Threshold returns the number of coefficients, which is the minimum
// number of evaluations that determine the polynomial.
func (p *Polynomial) Threshold() int {
	return len(p.coeffs)
}

// Evaluate computes the polynomial at x using Horner's method.
// Evaluating at zero returns exactly the constant term.
func (p *Polynomial) Evaluate(x group.Scalar) group.Scalar {
	result := p.group.NewScalar().Set(p.coeffs[len(p.coeffs)-1])
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		result = p.group.NewScalar().Mul(result, x)
		result = p.group.NewScalar().Add(result, p.coeffs[i])
	}
	return result
}

// VerificationVector commits to every coefficient for Feldman
// verification: F[k] = coeff[k]*G for k in [0, t). The vector has
// exactly one entry per coefficient; a shorter vector could not bind
// the highest-degree coefficient.
func (p *Polynomial) VerificationVector() []group.Point {
	vector := make([]group.Point, len(p.coeffs))
	for i, c := range p.coeffs {
		vector[i] = p.group.NewPoint().ScalarBaseMult(c)
	}
	return vector
}
