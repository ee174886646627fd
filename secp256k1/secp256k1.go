package secp256k1

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/dvshur/pedersen-curve25519-keygen/group"
)

// domainPrefix separates this protocol's hashes from other uses of the
// same curve and hash function.
const domainPrefix = "PEDERSEN-DKG-SECP256K1-SHA256-v1"

// digest computes a domain-separated SHA-256 hash of the input data.
func digest(tag string, data ...[]byte) []byte {
	h := sha256.New()
	h.Write([]byte(domainPrefix))
	h.Write([]byte(tag))
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// allZero reports whether every byte of b is zero.
func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// Scalar represents an element of the secp256k1 scalar field.
// It implements [group.Scalar] by wrapping btcec's ModNScalar, which
// keeps values reduced modulo the group order N.
type Scalar struct {
	inner btcec.ModNScalar
}

// Add sets s to a + b (mod N) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	var result btcec.ModNScalar
	result.Set(&aScalar.inner).Add(&bScalar.inner)
	s.inner.Set(&result)
	return s
}

// Sub sets s to a - b (mod N) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	var result btcec.ModNScalar
	result.Set(&bScalar.inner).Negate().Add(&aScalar.inner)
	s.inner.Set(&result)
	return s
}

// Mul sets s to a * b (mod N) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	var result btcec.ModNScalar
	result.Set(&aScalar.inner).Mul(&bScalar.inner)
	s.inner.Set(&result)
	return s
}

// Negate sets s to -a (mod N) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Set(&aScalar.inner).Negate()
	return s
}

// Invert sets s to a^(-1) (mod N) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner.Set(&aScalar.inner).InverseNonConst()
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Set(&aScalar.inner)
	return s
}

// SetUint64 sets s to the small integer v and returns s.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	var buf [32]byte
	binary.BigEndian.PutUint64(buf[24:], v)
	s.inner.SetBytes(&buf)
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	var buf [32]byte
	s.inner.PutBytes(&buf)
	return buf[:]
}

// SetBytes sets s from a 32-byte big-endian encoding and returns s.
// Returns an error if the encoding is not exactly 32 bytes or is not
// reduced modulo the group order. Out-of-range values are rejected,
// not reduced.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != 32 {
		return nil, fmt.Errorf("invalid scalar encoding length %d", len(data))
	}
	if overflow := s.inner.SetBytes((*[32]byte)(data)); overflow != 0 {
		return nil, errors.New("scalar encoding out of range")
	}
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	bScalar := b.(*Scalar)
	return s.inner.Equals(&bScalar.inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Point represents a point on the secp256k1 curve.
// It implements [group.Point] by wrapping btcec's JacobianPoint.
//
// The zero value is the point at infinity, which serves as the group's
// identity element.
type Point struct {
	inner btcec.JacobianPoint
}

// isInfinity reports whether p is the point at infinity. Both the zero
// value and any representation with a zero Z coordinate encode it.
func (p *Point) isInfinity() bool {
	var q btcec.JacobianPoint
	q.Set(&p.inner)
	q.X.Normalize()
	q.Y.Normalize()
	q.Z.Normalize()
	return (q.X.IsZero() && q.Y.IsZero()) || q.Z.IsZero()
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	btcec.AddNonConst(&aPoint.inner, &bPoint.inner, &p.inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	var negB btcec.JacobianPoint
	negB.Set(&bPoint.inner)
	negB.Y.Normalize()
	negB.Y.Negate(1)
	negB.Y.Normalize()
	btcec.AddNonConst(&aPoint.inner, &negB, &p.inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Set(&aPoint.inner)
	p.inner.Y.Normalize()
	p.inner.Y.Negate(1)
	p.inner.Y.Normalize()
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qPoint := q.(*Point)
	var result btcec.JacobianPoint
	btcec.ScalarMultNonConst(&scalar.inner, &qPoint.inner, &result)
	p.inner.Set(&result)
	return p
}

// ScalarBaseMult sets p to s * G, where G is the curve's base point,
// and returns p.
func (p *Point) ScalarBaseMult(s group.Scalar) group.Point {
	scalar := s.(*Scalar)
	var result btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&scalar.inner, &result)
	p.inner.Set(&result)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Set(&aPoint.inner)
	return p
}

// Bytes returns the 33-byte compressed point encoding. The point at
// infinity encodes as 33 zero bytes.
func (p *Point) Bytes() []byte {
	if p.isInfinity() {
		return make([]byte, 33)
	}
	var q btcec.JacobianPoint
	q.Set(&p.inner)
	q.ToAffine()
	return btcec.NewPublicKey(&q.X, &q.Y).SerializeCompressed()
}

// SetBytes sets p from a 33-byte compressed point encoding and returns p.
// 33 zero bytes decode to the point at infinity. Returns an error if the
// data does not represent a valid curve point.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) == 33 && allZero(data) {
		p.inner = btcec.JacobianPoint{}
		return p, nil
	}
	pub, err := btcec.ParsePubKey(data)
	if err != nil {
		return nil, fmt.Errorf("invalid point encoding: %w", err)
	}
	pub.AsJacobian(&p.inner)
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	bPoint := b.(*Point)
	if p.isInfinity() || bPoint.isInfinity() {
		return p.isInfinity() && bPoint.isInfinity()
	}
	var pa, pb btcec.JacobianPoint
	pa.Set(&p.inner)
	pb.Set(&bPoint.inner)
	pa.ToAffine()
	pb.ToAffine()
	return pa.X.Equals(&pb.X) && pa.Y.Equals(&pb.Y)
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.isInfinity()
}

// Secp256k1 implements [group.Group] for the secp256k1 curve.
//
// Secp256k1 is a zero-sized type that provides access to secp256k1
// curve operations. Create an instance with &Secp256k1{} or
// new(Secp256k1).
type Secp256k1 struct{}

// NewScalar returns a new scalar initialized to zero.
func (g *Secp256k1) NewScalar() group.Scalar {
	return &Scalar{}
}

// NewPoint returns a new point initialized to the point at infinity.
func (g *Secp256k1) NewPoint() group.Point {
	return &Point{}
}

// Generator returns the standard base point for the secp256k1 curve.
func (g *Secp256k1) Generator() group.Point {
	var p Point
	btcec.Generator().AsJacobian(&p.inner)
	return &p
}

// RandomScalar generates a cryptographically random scalar using the
// provided random source. Candidates are rejection-sampled so the
// result is uniform in [0, N). The order is close enough to 2^256 that
// a retry is effectively never needed.
func (g *Secp256k1) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [32]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("failed to generate random scalar: %w", err)
		}
		s := &Scalar{}
		if overflow := s.inner.SetBytes(&buf); overflow == 0 {
			return s, nil
		}
	}
}

// SecretScalar derives a secret scalar from 32 bytes of randomness
// following the BIP-340 convention: the seed is hashed and the digest
// is interpreted as a big-endian integer and reduced modulo the group
// order. secp256k1 has cofactor 1, so no clamping is applied.
func (g *Secp256k1) SecretScalar(r io.Reader) (group.Scalar, error) {
	var seed [32]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return nil, fmt.Errorf("failed to read key seed: %w", err)
	}
	h := digest("key", seed[:])
	s := &Scalar{}
	s.inner.SetBytes((*[32]byte)(h))
	if s.inner.IsZero() {
		return nil, errors.New("derived zero scalar")
	}
	return s, nil
}

// HashToScalar hashes the provided data to a scalar using SHA-256 with
// domain separation. The digest is reduced modulo the group order.
func (g *Secp256k1) HashToScalar(data ...[]byte) (group.Scalar, error) {
	h := digest("scalar", data...)
	s := &Scalar{}
	s.inner.SetBytes((*[32]byte)(h))
	return s, nil
}

// HashToPoint hashes the provided data to a curve point using
// try-and-increment: counter-suffixed digests are used as candidate
// x coordinates with even y until one lies on the curve. secp256k1 has
// cofactor 1, so no clearing is needed. The result is never the
// identity and has no known discrete logarithm relative to the base
// point.
func (g *Secp256k1) HashToPoint(data ...[]byte) (group.Point, error) {
	var msg []byte
	for _, d := range data {
		msg = append(msg, d...)
	}
	candidate := make([]byte, 33)
	candidate[0] = 0x02 // compressed encoding, even y
	for ctr := 0; ctr < 256; ctr++ {
		h := digest("point", msg, []byte{byte(ctr)})
		copy(candidate[1:], h)
		pub, err := btcec.ParsePubKey(candidate)
		if err != nil {
			continue
		}
		var p Point
		pub.AsJacobian(&p.inner)
		return &p, nil
	}
	// Each attempt decodes with probability ~1/2.
	return nil, errors.New("no curve point found in 256 attempts")
}

// Order returns the order of the secp256k1 group as a big-endian byte
// slice.
func (g *Secp256k1) Order() []byte {
	return btcec.S256().N.Bytes()
}
