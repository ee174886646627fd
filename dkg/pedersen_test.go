package dkg

import (
	"crypto/rand"
	"testing"

	"github.com/dvshur/pedersen-curve25519-keygen/edwards"
	"github.com/dvshur/pedersen-curve25519-keygen/group"
)

func TestBlindUnblind(t *testing.T) {
	g := &edwards.Edwards{}
	d, err := New(g, 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	s, _ := g.RandomScalar(rand.Reader)
	P := g.NewPoint().ScalarBaseMult(s)
	r, _ := g.RandomScalar(rand.Reader)

	commitment := d.Blind(P, r)

	t.Run("Hiding", func(t *testing.T) {
		if commitment.Equal(P) {
			t.Error("commitment should not equal the committed point")
		}
	})

	t.Run("Roundtrip", func(t *testing.T) {
		if !d.Unblind(commitment, r).Equal(P) {
			t.Error("Unblind(Blind(P, r), r) != P")
		}
	})

	t.Run("WrongBlinder", func(t *testing.T) {
		wrong := g.NewScalar().Add(r, g.NewScalar().SetUint64(1))
		if d.Unblind(commitment, wrong).Equal(P) {
			t.Error("unblinding with the wrong blinder should not recover P")
		}
	})
}

func TestAggregatePublicKey(t *testing.T) {
	g := &edwards.Edwards{}
	d, err := New(g, 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	n := 4
	commitments := make([]group.Point, n)
	blinders := make([]group.Scalar, n)
	expected := g.NewPoint()
	for i := 0; i < n; i++ {
		kp, err := GenerateKeyPair(g, rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		r, err := g.RandomScalar(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		commitments[i] = d.Blind(kp.Public, r)
		blinders[i] = r
		expected = g.NewPoint().Add(expected, kp.Public)
	}

	sum, err := d.AggregatePublicKey(commitments, blinders)
	if err != nil {
		t.Fatal(err)
	}
	if !sum.Equal(expected) {
		t.Error("aggregate should equal the sum of the public keys")
	}

	t.Run("LengthMismatch", func(t *testing.T) {
		if _, err := d.AggregatePublicKey(commitments, blinders[:n-1]); err == nil {
			t.Error("expected error for mismatched lengths")
		}
	})
}
