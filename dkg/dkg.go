package dkg

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/dvshur/pedersen-curve25519-keygen/group"
)

// Sentinel errors for the protocol's failure categories. All errors
// returned by this package wrap one of these where the category
// applies, so callers can classify failures with [errors.Is]. None of
// them is ever retried internally; correctness does not improve by
// repetition, only by correcting the input.
var (
	// ErrGeneration indicates the secure randomness source failed during
	// key, blinder, or polynomial generation. Fatal: a key derived from
	// degraded entropy must never be used.
	ErrGeneration = errors.New("dkg: secure randomness unavailable")

	// ErrVerification indicates a share or commitment opening failed its
	// consistency check. Recoverable at the protocol level through the
	// complaint procedure; the failing indices and disputed values are
	// always surfaced, never suppressed.
	ErrVerification = errors.New("dkg: share inconsistent with verification vector")

	// ErrReconstruction indicates secret reconstruction could not
	// proceed: fewer than threshold shares, or zero or duplicate party
	// indices. A wrong secret is never silently returned.
	ErrReconstruction = errors.New("dkg: secret reconstruction failed")

	// ErrArithmetic indicates an encoded field element was invalid or
	// out of range. Such inputs are rejected before use, never coerced.
	ErrArithmetic = errors.New("dkg: invalid field element")
)

// pedersenSeed is the fixed public constant hashed into the group to
// derive the second Pedersen base point H. Deriving H from a fixed
// public seed keeps its discrete logarithm relative to G unknown to
// every party; an H chosen by any party would be a trapdoor.
var pedersenSeed = bytes.Repeat([]byte{0xff}, 32)

// DKG holds the group and threshold parameters for one key generation
// ceremony. threshold (t) parties out of total (n) can later
// reconstruct or use the joint secret; fewer learn nothing.
type DKG struct {
	group     group.Group
	threshold int // t - minimum shares needed for reconstruction
	total     int // n - total parties

	// h is the second Pedersen base point, derived once from
	// pedersenSeed. Its discrete logarithm relative to G is unknown.
	h group.Point
}

// New creates a DKG instance with the given group and threshold
// parameters. threshold is the minimum number of parties required to
// reconstruct (t). total is the total number of parties (n).
func New(g group.Group, threshold, total int) (*DKG, error) {
	if threshold < 1 {
		return nil, errors.New("threshold must be at least 1")
	}
	if total < threshold {
		return nil, errors.New("total must be >= threshold")
	}

	h, err := g.HashToPoint(pedersenSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to derive commitment base point: %w", err)
	}

	return &DKG{
		group:     g,
		threshold: threshold,
		total:     total,
		h:         h,
	}, nil
}

// Threshold returns t, the minimum number of parties required to
// reconstruct the secret.
func (d *DKG) Threshold() int {
	return d.threshold
}

// Total returns n, the total number of parties.
func (d *DKG) Total() int {
	return d.total
}

// PedersenBase returns a copy of the second base point H used for
// blinding commitments.
func (d *DKG) PedersenBase() group.Point {
	return d.group.NewPoint().Set(d.h)
}

// scalarFromInt converts a small positive integer, typically a party
// index, to a scalar.
func (d *DKG) scalarFromInt(n int) group.Scalar {
	return d.group.NewScalar().SetUint64(uint64(n))
}

// KeyPair couples a secret scalar with its public point. The invariant
// Public = Secret*G holds for every pair returned by GenerateKeyPair.
type KeyPair struct {
	Secret group.Scalar
	Public group.Point
}

// GenerateKeyPair derives a fresh key pair from the provided randomness
// source following the group's key derivation convention. A randomness
// failure is wrapped in ErrGeneration and is fatal: generation never
// proceeds with degraded entropy and is never retried.
func GenerateKeyPair(g group.Group, r io.Reader) (*KeyPair, error) {
	secret, err := g.SecretScalar(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return &KeyPair{
		Secret: secret,
		Public: g.NewPoint().ScalarBaseMult(secret),
	}, nil
}

// DecodeScalar parses a canonical scalar encoding. Invalid or
// out-of-range encodings are rejected with an error wrapping
// ErrArithmetic; they are never reduced into range.
func DecodeScalar(g group.Group, data []byte) (group.Scalar, error) {
	s, err := g.NewScalar().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArithmetic, err)
	}
	return s, nil
}

// DecodePoint parses a canonical point encoding. Encodings that do not
// represent a valid group element are rejected with an error wrapping
// ErrArithmetic.
func DecodePoint(g group.Group, data []byte) (group.Point, error) {
	p, err := g.NewPoint().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArithmetic, err)
	}
	return p, nil
}
