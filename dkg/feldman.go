package dkg

import (
	"github.com/dvshur/pedersen-curve25519-keygen/group"
)

// VerifyShare checks a received share against the sender's published
// verification vector:
//
//	share*G == sum_k(index^k * vector[k])
//
// The equation holds iff the share is the sender's polynomial evaluated
// at index and the vector commits to that polynomial's coefficients,
// so a recipient can validate its share without learning the
// polynomial. The check is state-free and deterministic; every
// receiving party runs it against every dealing party.
func VerifyShare(g group.Group, index, share group.Scalar, vector []group.Point) bool {
	lhs := g.NewPoint().ScalarBaseMult(share)

	rhs := g.NewPoint()
	xPower := g.NewScalar().SetUint64(1)
	for _, commit := range vector {
		term := g.NewPoint().ScalarMult(xPower, commit)
		rhs = g.NewPoint().Add(rhs, term)
		xPower = g.NewScalar().Mul(xPower, index)
	}

	return lhs.Equal(rhs)
}
