package dkg

import (
	"fmt"

	"github.com/dvshur/pedersen-curve25519-keygen/group"
)

// Blind commits to a public point under the instance's second base
// point H: C = P + r*H. The commitment hides P until the blinder r is
// released.
func (d *DKG) Blind(public group.Point, blinder group.Scalar) group.Point {
	rH := d.group.NewPoint().ScalarMult(blinder, d.h)
	return d.group.NewPoint().Add(public, rH)
}

// Unblind removes a blinding factor from a commitment: P = C - r*H.
// Unblind(Blind(P, r), r) == P for all P and r.
func (d *DKG) Unblind(commitment group.Point, blinder group.Scalar) group.Point {
	rH := d.group.NewPoint().ScalarMult(blinder, d.h)
	return d.group.NewPoint().Sub(commitment, rH)
}

// AggregatePublicKey computes the joint public key from all parties'
// commitments and their revealed blinders. By the commitment
// homomorphism, summing the unblinded commitments equals the sum of
// the underlying public points, so no party's raw public point is
// needed in the clear. The slices are matched by position.
//
// Blinders must not be revealed to this or any other function until
// every party's commitment has been published.
func (d *DKG) AggregatePublicKey(commitments []group.Point, blinders []group.Scalar) (group.Point, error) {
	if len(commitments) != len(blinders) {
		return nil, fmt.Errorf("got %d commitments but %d blinders", len(commitments), len(blinders))
	}

	sum := d.group.NewPoint()
	for i, c := range commitments {
		sum = d.group.NewPoint().Add(sum, d.Unblind(c, blinders[i]))
	}
	return sum, nil
}
