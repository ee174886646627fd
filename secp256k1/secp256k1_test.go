package secp256k1

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/dvshur/pedersen-curve25519-keygen/group"
)

// failingReader simulates an exhausted entropy source.
type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestScalar(t *testing.T) {
	g := &Secp256k1{}

	t.Run("AddSub", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b, _ := g.RandomScalar(rand.Reader)

		sum := g.NewScalar().Add(a, b)
		diff := g.NewScalar().Sub(sum, b)

		if !diff.Equal(a) {
			t.Error("(a+b)-b != a")
		}
	})

	t.Run("MulInvert", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		aInv, err := g.NewScalar().Invert(a)
		if err != nil {
			t.Fatal(err)
		}

		product := g.NewScalar().Mul(a, aInv)

		// product should be one: multiplying any b by it is a no-op
		b, _ := g.RandomScalar(rand.Reader)
		result := g.NewScalar().Mul(product, b)

		if !result.Equal(b) {
			t.Error("a*a^-1 != 1")
		}
	})

	t.Run("InvertZeroFails", func(t *testing.T) {
		zero := g.NewScalar()
		_, err := g.NewScalar().Invert(zero)
		if err == nil {
			t.Error("expected error inverting zero")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		zero := g.NewScalar()
		a, _ := g.RandomScalar(rand.Reader)
		negA := g.NewScalar().Negate(a)

		result := g.NewScalar().Add(a, negA)

		if !result.Equal(zero) {
			t.Error("negating scalar failed")
		}
	})

	t.Run("SetUint64", func(t *testing.T) {
		a := g.NewScalar().SetUint64(5)
		b := g.NewScalar().SetUint64(7)

		sum := g.NewScalar().Add(a, b)

		if !sum.Equal(g.NewScalar().SetUint64(12)) {
			t.Error("5 + 7 != 12")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)

		restored, err := g.NewScalar().SetBytes(a.Bytes())
		if err != nil {
			t.Fatal(err)
		}

		if !restored.Equal(a) {
			t.Error("scalar bytes roundtrip failed")
		}
	})

	t.Run("SetBytesStrict", func(t *testing.T) {
		outOfRange := bytes.Repeat([]byte{0xff}, 32)
		if _, err := g.NewScalar().SetBytes(outOfRange); err == nil {
			t.Error("expected error for out-of-range encoding")
		}

		if _, err := g.NewScalar().SetBytes([]byte{1, 2, 3}); err == nil {
			t.Error("expected error for wrong-length encoding")
		}
	})

	t.Run("NewScalarIsZero", func(t *testing.T) {
		zero := g.NewScalar()
		if !zero.IsZero() {
			t.Error("new scalar should be zero")
		}
	})

	t.Run("Equal", func(t *testing.T) {
		var a group.Scalar
		for {
			// exclude a==0, where -a==a and the assertion below fails
			a, _ = g.RandomScalar(rand.Reader)
			if !a.IsZero() {
				break
			}
		}
		b := g.NewScalar().Set(a)
		if !a.Equal(b) {
			t.Error("copied scalar should equal original")
		}

		b = g.NewScalar().Negate(a)
		if a.Equal(b) {
			t.Error("a should not equal -a")
		}
	})
}

func TestPoint(t *testing.T) {
	g := &Secp256k1{}

	t.Run("AddSub", func(t *testing.T) {
		s1, _ := g.RandomScalar(rand.Reader)
		s2, _ := g.RandomScalar(rand.Reader)
		P := g.NewPoint().ScalarBaseMult(s1)
		Q := g.NewPoint().ScalarBaseMult(s2)

		sum := g.NewPoint().Add(P, Q)
		diff := g.NewPoint().Sub(sum, Q)

		if !diff.Equal(P) {
			t.Error("(P+Q)-Q != P")
		}
	})

	t.Run("AddIdentity", func(t *testing.T) {
		s, _ := g.RandomScalar(rand.Reader)
		P := g.NewPoint().ScalarBaseMult(s)

		sum := g.NewPoint().Add(P, g.NewPoint())

		if !sum.Equal(P) {
			t.Error("P + identity != P")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		s, _ := g.RandomScalar(rand.Reader)
		P := g.NewPoint().ScalarBaseMult(s)
		negP := g.NewPoint().Negate(P)

		result := g.NewPoint().Add(P, negP)

		if !result.IsIdentity() {
			t.Error("P + (-P) != identity")
		}
	})

	t.Run("ScalarBaseMult", func(t *testing.T) {
		s, _ := g.RandomScalar(rand.Reader)

		fixed := g.NewPoint().ScalarBaseMult(s)
		variable := g.NewPoint().ScalarMult(s, g.Generator())

		if !fixed.Equal(variable) {
			t.Error("fixed-base and variable-base multiplication disagree")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		s, _ := g.RandomScalar(rand.Reader)
		P := g.NewPoint().ScalarBaseMult(s)

		enc := P.Bytes()
		if len(enc) != 33 {
			t.Fatalf("expected 33-byte encoding, got %d", len(enc))
		}

		restored, err := g.NewPoint().SetBytes(enc)
		if err != nil {
			t.Fatal(err)
		}

		if !restored.Equal(P) {
			t.Error("point bytes roundtrip failed")
		}
	})

	t.Run("IdentityBytesRoundtrip", func(t *testing.T) {
		enc := g.NewPoint().Bytes()
		if len(enc) != 33 {
			t.Fatalf("expected 33-byte encoding, got %d", len(enc))
		}

		restored, err := g.NewPoint().SetBytes(enc)
		if err != nil {
			t.Fatal(err)
		}

		if !restored.IsIdentity() {
			t.Error("identity bytes roundtrip failed")
		}
	})

	t.Run("SetBytesRejectsInvalid", func(t *testing.T) {
		bad := bytes.Repeat([]byte{0xff}, 33)
		if _, err := g.NewPoint().SetBytes(bad); err == nil {
			t.Error("expected error for invalid encoding")
		}

		if _, err := g.NewPoint().SetBytes(make([]byte, 32)); err == nil {
			t.Error("expected error for wrong-length encoding")
		}
	})

	t.Run("IsIdentity", func(t *testing.T) {
		identity := g.NewPoint()
		if !identity.IsIdentity() {
			t.Error("new point should be identity")
		}

		gen := g.Generator()
		if gen.IsIdentity() {
			t.Error("generator should not be identity")
		}
	})
}

func TestRandomScalar(t *testing.T) {
	g := &Secp256k1{}

	t.Run("Distinct", func(t *testing.T) {
		a, err := g.RandomScalar(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		b, err := g.RandomScalar(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		if a.Equal(b) {
			t.Error("two random scalars should not be equal")
		}
	})

	t.Run("FailingReader", func(t *testing.T) {
		if _, err := g.RandomScalar(failingReader{}); err == nil {
			t.Error("expected error from failing randomness source")
		}
	})
}

func TestSecretScalar(t *testing.T) {
	g := &Secp256k1{}

	seed := bytes.Repeat([]byte{7}, 32)

	t.Run("Deterministic", func(t *testing.T) {
		a, err := g.SecretScalar(bytes.NewReader(seed))
		if err != nil {
			t.Fatal(err)
		}
		b, _ := g.SecretScalar(bytes.NewReader(seed))

		if !a.Equal(b) {
			t.Error("same seed should derive the same scalar")
		}
		if a.IsZero() {
			t.Error("derived scalar should not be zero")
		}
	})

	t.Run("DistinctSeeds", func(t *testing.T) {
		a, _ := g.SecretScalar(bytes.NewReader(seed))
		b, _ := g.SecretScalar(bytes.NewReader(bytes.Repeat([]byte{8}, 32)))

		if a.Equal(b) {
			t.Error("different seeds should derive different scalars")
		}
	})

	t.Run("FailingReader", func(t *testing.T) {
		if _, err := g.SecretScalar(failingReader{}); err == nil {
			t.Error("expected error from failing randomness source")
		}
	})
}

func TestHashToScalar(t *testing.T) {
	g := &Secp256k1{}

	a, err := g.HashToScalar([]byte("some input"))
	if err != nil {
		t.Fatal(err)
	}

	b, _ := g.HashToScalar([]byte("some input"))
	if !a.Equal(b) {
		t.Error("hashing the same input should give the same scalar")
	}

	c, _ := g.HashToScalar([]byte("other input"))
	if a.Equal(c) {
		t.Error("hashing different inputs should give different scalars")
	}
}

func TestHashToPoint(t *testing.T) {
	g := &Secp256k1{}

	P, err := g.HashToPoint([]byte("some input"))
	if err != nil {
		t.Fatal(err)
	}

	if P.IsIdentity() {
		t.Error("hashed point should not be the identity")
	}

	Q, _ := g.HashToPoint([]byte("some input"))
	if !P.Equal(Q) {
		t.Error("hashing the same input should give the same point")
	}

	R, _ := g.HashToPoint([]byte("other input"))
	if P.Equal(R) {
		t.Error("hashing different inputs should give different points")
	}
}
