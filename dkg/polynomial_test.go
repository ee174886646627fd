package dkg

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/dvshur/pedersen-curve25519-keygen/edwards"
	"github.com/dvshur/pedersen-curve25519-keygen/group"
)

func TestEvaluate(t *testing.T) {
	g := &edwards.Edwards{}

	// f(x) = 1234 + 7x + 13x^2
	poly := &Polynomial{
		group: g,
		coeffs: []group.Scalar{
			g.NewScalar().SetUint64(1234),
			g.NewScalar().SetUint64(7),
			g.NewScalar().SetUint64(13),
		},
	}

	cases := []struct {
		x    uint64
		want uint64
	}{
		{0, 1234},
		{1, 1254},
		{2, 1300},
		{3, 1372},
		{4, 1470},
		{5, 1594},
	}
	for _, tc := range cases {
		got := poly.Evaluate(g.NewScalar().SetUint64(tc.x))
		if !got.Equal(g.NewScalar().SetUint64(tc.want)) {
			t.Errorf("f(%d) != %d", tc.x, tc.want)
		}
	}
}

func TestEvaluateMatchesPowerSum(t *testing.T) {
	g := &edwards.Edwards{}

	secret, _ := g.RandomScalar(rand.Reader)
	poly, err := RandomPolynomial(g, rand.Reader, secret, 3)
	if err != nil {
		t.Fatal(err)
	}

	x, _ := g.RandomScalar(rand.Reader)

	expected := g.NewScalar()
	xPower := g.NewScalar().SetUint64(1)
	for _, c := range poly.coeffs {
		term := g.NewScalar().Mul(c, xPower)
		expected = g.NewScalar().Add(expected, term)
		xPower = g.NewScalar().Mul(xPower, x)
	}

	if !poly.Evaluate(x).Equal(expected) {
		t.Error("Horner evaluation disagrees with explicit power sum")
	}
}

func TestRandomPolynomial(t *testing.T) {
	g := &edwards.Edwards{}

	t.Run("SecretIsConstantTerm", func(t *testing.T) {
		secret, _ := g.RandomScalar(rand.Reader)
		poly, err := RandomPolynomial(g, rand.Reader, secret, 2)
		if err != nil {
			t.Fatal(err)
		}

		if poly.Threshold() != 3 {
			t.Errorf("expected 3 coefficients, got %d", poly.Threshold())
		}
		if !poly.Evaluate(g.NewScalar()).Equal(secret) {
			t.Error("f(0) should equal the secret")
		}
	})

	t.Run("SecretIsCopied", func(t *testing.T) {
		secret := g.NewScalar().SetUint64(42)
		poly, err := RandomPolynomial(g, rand.Reader, secret, 1)
		if err != nil {
			t.Fatal(err)
		}

		secret.SetUint64(99)

		if !poly.Evaluate(g.NewScalar()).Equal(g.NewScalar().SetUint64(42)) {
			t.Error("mutating the caller's secret changed the polynomial")
		}
	})

	t.Run("DegreeZero", func(t *testing.T) {
		// a constant polynomial needs no randomness at all
		secret, _ := g.RandomScalar(rand.Reader)
		poly, err := RandomPolynomial(g, failingReader{}, secret, 0)
		if err != nil {
			t.Fatal(err)
		}

		x, _ := g.RandomScalar(rand.Reader)
		if !poly.Evaluate(x).Equal(secret) {
			t.Error("degree-0 polynomial should be constant")
		}
	})

	t.Run("NegativeDegree", func(t *testing.T) {
		secret, _ := g.RandomScalar(rand.Reader)
		if _, err := RandomPolynomial(g, rand.Reader, secret, -1); err == nil {
			t.Error("expected error for negative degree")
		}
	})

	t.Run("FailingReader", func(t *testing.T) {
		secret, _ := g.RandomScalar(rand.Reader)
		_, err := RandomPolynomial(g, failingReader{}, secret, 2)
		if !errors.Is(err, ErrGeneration) {
			t.Errorf("expected ErrGeneration, got %v", err)
		}
	})
}

func TestVerificationVector(t *testing.T) {
	g := &edwards.Edwards{}

	secret, _ := g.RandomScalar(rand.Reader)
	poly, err := RandomPolynomial(g, rand.Reader, secret, 2)
	if err != nil {
		t.Fatal(err)
	}

	vector := poly.VerificationVector()
	if len(vector) != len(poly.coeffs) {
		t.Fatalf("expected %d entries, got %d", len(poly.coeffs), len(vector))
	}

	for i, c := range poly.coeffs {
		if !vector[i].Equal(g.NewPoint().ScalarBaseMult(c)) {
			t.Errorf("entry %d should commit to coefficient %d", i, i)
		}
	}
}
