package edwards

import (
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"

	"filippo.io/edwards25519"
	"github.com/dvshur/pedersen-curve25519-keygen/group"
)

// domainPrefix separates this protocol's hashes from other uses of the
// same curve and hash function.
const domainPrefix = "PEDERSEN-DKG-ED25519-SHA512-v1"

// curveOrder is the order of the prime-order subgroup,
// l = 2^252 + 27742317777372353535851937790883648493.
var curveOrder *big.Int

func init() {
	order, ok := new(big.Int).SetString(
		"7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)
	if !ok {
		panic("edwards: failed to parse curve order")
	}
	curveOrder = order
}

// digest computes a domain-separated SHA-512 hash of the input data.
func digest(tag string, data ...[]byte) []byte {
	h := sha512.New()
	h.Write([]byte(domainPrefix))
	h.Write([]byte(tag))
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// Scalar represents an element of the edwards25519 scalar field.
// It implements [group.Scalar] by wrapping filippo.io/edwards25519's
// Scalar, which keeps values reduced modulo the subgroup order l.
type Scalar struct {
	inner *edwards25519.Scalar
}

// newScalar creates a new scalar initialized to zero.
func newScalar() *Scalar {
	return &Scalar{inner: edwards25519.NewScalar()}
}

// Add sets s to a + b (mod l) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Add(aScalar.inner, bScalar.inner)
	return s
}

// Sub sets s to a - b (mod l) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Subtract(aScalar.inner, bScalar.inner)
	return s
}

// Mul sets s to a * b (mod l) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Multiply(aScalar.inner, bScalar.inner)
	return s
}

// Negate sets s to -a (mod l) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Negate(aScalar.inner)
	return s
}

// Invert sets s to a^(-1) (mod l) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner.Invert(aScalar.inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Set(aScalar.inner)
	return s
}

// SetUint64 sets s to the small integer v and returns s.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	// A 64-bit value is always below the group order.
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:8], v)
	if _, err := s.inner.SetCanonicalBytes(buf[:]); err != nil {
		panic("edwards: internal error: uint64 exceeds scalar field")
	}
	return s
}

// Bytes returns the scalar as a 32-byte little-endian representation.
func (s *Scalar) Bytes() []byte {
	return s.inner.Bytes()
}

// SetBytes sets s from a 32-byte little-endian encoding and returns s.
// Returns an error if the encoding is not canonical, i.e. not reduced
// modulo the group order. Out-of-range values are rejected, not reduced.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if _, err := s.inner.SetCanonicalBytes(data); err != nil {
		return nil, fmt.Errorf("invalid scalar encoding: %w", err)
	}
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	bScalar := b.(*Scalar)
	return s.inner.Equal(bScalar.inner) == 1
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.Equal(edwards25519.NewScalar()) == 1
}

// Point represents a point on the edwards25519 curve.
// It implements [group.Point] by wrapping filippo.io/edwards25519's
// Point, which uses extended coordinates internally.
type Point struct {
	inner *edwards25519.Point
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	p.inner.Add(aPoint.inner, bPoint.inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	p.inner.Subtract(aPoint.inner, bPoint.inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Negate(aPoint.inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qPoint := q.(*Point)
	p.inner.ScalarMult(scalar.inner, qPoint.inner)
	return p
}

// ScalarBaseMult sets p to s * G, where G is the curve's base point,
// and returns p. This uses precomputed tables and is faster than
// ScalarMult with the generator.
func (p *Point) ScalarBaseMult(s group.Scalar) group.Point {
	scalar := s.(*Scalar)
	p.inner.ScalarBaseMult(scalar.inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Set(aPoint.inner)
	return p
}

// Bytes returns the compressed 32-byte point encoding.
func (p *Point) Bytes() []byte {
	return p.inner.Bytes()
}

// SetBytes sets p from a compressed point encoding and returns p.
// Returns an error if the data does not represent a valid curve point.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if _, err := p.inner.SetBytes(data); err != nil {
		return nil, fmt.Errorf("invalid point encoding: %w", err)
	}
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	bPoint := b.(*Point)
	return p.inner.Equal(bPoint.inner) == 1
}

// IsIdentity reports whether p is the identity element.
func (p *Point) IsIdentity() bool {
	return p.inner.Equal(edwards25519.NewIdentityPoint()) == 1
}

// Edwards implements [group.Group] for the edwards25519 curve.
//
// Edwards is a zero-sized type that provides access to edwards25519
// curve operations. Create an instance with &Edwards{} or new(Edwards).
type Edwards struct{}

// NewScalar returns a new scalar initialized to zero.
func (g *Edwards) NewScalar() group.Scalar {
	return newScalar()
}

// NewPoint returns a new point initialized to the identity element.
func (g *Edwards) NewPoint() group.Point {
	return &Point{inner: edwards25519.NewIdentityPoint()}
}

// Generator returns the standard base point for the edwards25519 curve.
func (g *Edwards) Generator() group.Point {
	return &Point{inner: edwards25519.NewGeneratorPoint()}
}

// RandomScalar generates a cryptographically random scalar using the
// provided random source. 64 bytes are read and reduced, giving a
// uniform distribution in [0, l).
func (g *Edwards) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("failed to generate random scalar: %w", err)
	}
	s := newScalar()
	if _, err := s.inner.SetUniformBytes(buf[:]); err != nil {
		return nil, fmt.Errorf("failed to generate random scalar: %w", err)
	}
	return s, nil
}

// SecretScalar derives a secret scalar from 32 bytes of randomness
// following the ed25519 key derivation convention (RFC 8032): the seed
// is hashed with SHA-512, and the first half of the digest is clamped
// (low three bits cleared, top bit cleared, second-highest bit set)
// before reduction.
func (g *Edwards) SecretScalar(r io.Reader) (group.Scalar, error) {
	var seed [32]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return nil, fmt.Errorf("failed to read key seed: %w", err)
	}
	h := sha512.Sum512(seed[:])
	s := newScalar()
	if _, err := s.inner.SetBytesWithClamping(h[:32]); err != nil {
		return nil, fmt.Errorf("failed to derive secret scalar: %w", err)
	}
	return s, nil
}

// HashToScalar hashes the provided data to a scalar using SHA-512 with
// domain separation. The 64-byte digest is reduced modulo the group
// order, giving a negligible bias.
func (g *Edwards) HashToScalar(data ...[]byte) (group.Scalar, error) {
	h := digest("scalar", data...)
	s := newScalar()
	if _, err := s.inner.SetUniformBytes(h); err != nil {
		return nil, fmt.Errorf("failed to hash to scalar: %w", err)
	}
	return s, nil
}

// HashToPoint hashes the provided data to a point in the prime-order
// subgroup using try-and-increment: counter-suffixed digests are decoded
// as point encodings until one parses, then the cofactor is cleared.
// The result is never the identity and has no known discrete logarithm
// relative to the base point.
func (g *Edwards) HashToPoint(data ...[]byte) (group.Point, error) {
	var msg []byte
	for _, d := range data {
		msg = append(msg, d...)
	}
	for ctr := 0; ctr < 256; ctr++ {
		h := digest("point", msg, []byte{byte(ctr)})
		p := edwards25519.NewIdentityPoint()
		if _, err := p.SetBytes(h[:32]); err != nil {
			continue
		}
		p.MultByCofactor(p)
		if p.Equal(edwards25519.NewIdentityPoint()) == 1 {
			continue
		}
		return &Point{inner: p}, nil
	}
	// Each attempt decodes with probability ~1/2.
	return nil, errors.New("no curve point found in 256 attempts")
}

// Order returns the order of the edwards25519 prime-order subgroup
// as a big-endian byte slice.
func (g *Edwards) Order() []byte {
	return curveOrder.Bytes()
}
