package dkg

import (
	"crypto/rand"
	"testing"

	"github.com/dvshur/pedersen-curve25519-keygen/edwards"
)

func TestVerifyShare(t *testing.T) {
	g := &edwards.Edwards{}

	secret, _ := g.RandomScalar(rand.Reader)
	poly, err := RandomPolynomial(g, rand.Reader, secret, 2)
	if err != nil {
		t.Fatal(err)
	}
	vector := poly.VerificationVector()

	t.Run("ValidShares", func(t *testing.T) {
		for i := 1; i <= 5; i++ {
			index := g.NewScalar().SetUint64(uint64(i))
			share := poly.Evaluate(index)
			if !VerifyShare(g, index, share, vector) {
				t.Errorf("share for index %d should verify", i)
			}
		}
	})

	t.Run("ConstantTermAtZero", func(t *testing.T) {
		zero := g.NewScalar()
		if !VerifyShare(g, zero, poly.Evaluate(zero), vector) {
			t.Error("evaluation at zero should verify against the constant-term commitment")
		}
	})

	t.Run("TamperedShare", func(t *testing.T) {
		index := g.NewScalar().SetUint64(2)
		share := poly.Evaluate(index)
		tampered := g.NewScalar().Add(share, g.NewScalar().SetUint64(1))
		if VerifyShare(g, index, tampered, vector) {
			t.Error("tampered share should not verify")
		}
	})

	t.Run("WrongIndex", func(t *testing.T) {
		share := poly.Evaluate(g.NewScalar().SetUint64(2))
		if VerifyShare(g, g.NewScalar().SetUint64(3), share, vector) {
			t.Error("share should not verify under another party's index")
		}
	})

	t.Run("TruncatedVector", func(t *testing.T) {
		index := g.NewScalar().SetUint64(2)
		share := poly.Evaluate(index)
		if VerifyShare(g, index, share, vector[:len(vector)-1]) {
			t.Error("share should not verify against a truncated vector")
		}
	})

	t.Run("WrongVector", func(t *testing.T) {
		other, err := RandomPolynomial(g, rand.Reader, secret, 2)
		if err != nil {
			t.Fatal(err)
		}
		index := g.NewScalar().SetUint64(2)
		share := poly.Evaluate(index)
		if VerifyShare(g, index, share, other.VerificationVector()) {
			t.Error("share should not verify against another polynomial's vector")
		}
	})
}
