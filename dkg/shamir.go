package dkg

import (
	"fmt"

	"github.com/dvshur/pedersen-curve25519-keygen/group"
)

// Share pairs a party index with that party's scalar share.
type Share struct {
	Index group.Scalar
	Value group.Scalar
}

// LagrangeCoefficientsAtZero computes the interpolation coefficients
//
//	c_i = prod_{j != i}(x_j * (x_j - x_i)^(-1))
//
// for evaluating at zero a polynomial sampled at the given indices.
// Indices must be nonzero and pairwise distinct: a duplicate makes a
// denominator zero and its inversion fail. Both cases are reported
// wrapped in ErrReconstruction rather than producing a wrong
// coefficient.
func LagrangeCoefficientsAtZero(g group.Group, indices []group.Scalar) ([]group.Scalar, error) {
	for i, x := range indices {
		if x.IsZero() {
			return nil, fmt.Errorf("%w: index at position %d is zero", ErrReconstruction, i)
		}
	}

	coeffs := make([]group.Scalar, len(indices))
	for i, xi := range indices {
		num := g.NewScalar().SetUint64(1)
		den := g.NewScalar().SetUint64(1)
		for j, xj := range indices {
			if j == i {
				continue
			}
			num = g.NewScalar().Mul(num, xj)
			diff := g.NewScalar().Sub(xj, xi)
			den = g.NewScalar().Mul(den, diff)
		}

		denInv, err := g.NewScalar().Invert(den)
		if err != nil {
			return nil, fmt.Errorf("%w: duplicate party index", ErrReconstruction)
		}
		coeffs[i] = g.NewScalar().Mul(num, denInv)
	}
	return coeffs, nil
}

// Reconstruct recovers a shared secret from threshold or more shares by
// Lagrange interpolation at zero. If the shares lie on a polynomial of
// degree threshold-1, the result is that polynomial's constant term,
// independent of which qualifying subset the shares came from. Fewer
// than threshold shares, zero indices, and duplicate indices are all
// reported wrapped in ErrReconstruction; a wrong secret is never
// silently returned.
func Reconstruct(g group.Group, shares []*Share, threshold int) (group.Scalar, error) {
	if len(shares) < threshold {
		return nil, fmt.Errorf("%w: need %d shares, got %d", ErrReconstruction, threshold, len(shares))
	}

	indices := make([]group.Scalar, len(shares))
	for i, s := range shares {
		indices[i] = s.Index
	}
	coeffs, err := LagrangeCoefficientsAtZero(g, indices)
	if err != nil {
		return nil, err
	}

	secret := g.NewScalar()
	for i, s := range shares {
		term := g.NewScalar().Mul(coeffs[i], s.Value)
		secret = g.NewScalar().Add(secret, term)
	}
	return secret, nil
}
