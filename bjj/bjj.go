package bjj

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/dvshur/pedersen-curve25519-keygen/group"
	"golang.org/x/crypto/blake2b"
)

// domainPrefix separates this protocol's hashes from other uses of the
// same curve and hash function. The format follows the Ledger/iden3
// Baby Jubjub convention.
const domainPrefix = "PEDERSEN-DKG-EDBABYJUJUB-BLAKE512-v1"

// curveOrder is the Baby Jubjub subgroup order.
// This is distinct from the BN254 scalar field order (Fr).
var curveOrder *big.Int

// curveBase is the standard base point generating the prime-order subgroup.
var curveBase twistededwards.PointAffine

// cofactor is the Baby Jubjub curve cofactor.
var cofactor = big.NewInt(8)

func init() {
	curve := twistededwards.GetEdwardsCurve()
	curveOrder = new(big.Int).Set(&curve.Order)
	curveBase.Set(&curve.Base)
}

// digest computes a domain-separated Blake2b-512 hash of the input data.
func digest(tag string, data ...[]byte) []byte {
	h, _ := blake2b.New512(nil)
	h.Write([]byte(domainPrefix))
	h.Write([]byte(tag))
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// reverse returns a copy of b with the byte order flipped, converting
// between little-endian and big-endian representations.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := 0; i < len(b); i++ {
		out[i] = b[len(b)-1-i]
	}
	return out
}

// Scalar represents an element of the Baby Jubjub scalar field.
// It implements [group.Scalar] using big.Int with modular arithmetic
// over the curve's subgroup order.
//
// All arithmetic operations automatically reduce results modulo the
// curve order to maintain valid scalar values.
type Scalar struct {
	inner *big.Int
}

// newScalar creates a new scalar initialized to zero.
func newScalar() *Scalar {
	return &Scalar{inner: new(big.Int)}
}

// reduce ensures the scalar is in the range [0, curveOrder).
func (s *Scalar) reduce() {
	s.inner.Mod(s.inner, curveOrder)
}

// Add sets s to a + b (mod curveOrder) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Add(aScalar.inner, bScalar.inner)
	s.reduce()
	return s
}

// Sub sets s to a - b (mod curveOrder) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Sub(aScalar.inner, bScalar.inner)
	s.reduce()
	return s
}

// Mul sets s to a * b (mod curveOrder) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Mul(aScalar.inner, bScalar.inner)
	s.reduce()
	return s
}

// Negate sets s to -a (mod curveOrder) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Neg(aScalar.inner)
	s.reduce()
	return s
}

// Invert sets s to a^(-1) (mod curveOrder) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner.ModInverse(aScalar.inner, curveOrder)
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
	s.inner.SetUint64(v)
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	bytes := s.inner.Bytes()
	if len(bytes) >= 32 {
		return bytes[:32]
	}
	// Pad with leading zeros
	padded := make([]byte, 32)
	copy(padded[32-len(bytes):], bytes)
	return padded
}

// SetBytes sets s from a 32-byte big-endian encoding and returns s.
// Returns an error if the encoding is not exactly 32 bytes or is not
// reduced modulo the curve order. Out-of-range values are rejected,
// not reduced.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != 32 {
		return nil, fmt.Errorf("invalid scalar encoding length %d", len(data))
	}
	v := new(big.Int).SetBytes(data)
	if v.Cmp(curveOrder) >= 0 {
		return nil, errors.New("scalar encoding out of range")
	}
	s.inner.Set(v)
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	bScalar := b.(*Scalar)
	return s.inner.Cmp(bScalar.inner) == 0
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.Sign() == 0
}

// Point represents a point on the Baby Jubjub curve.
// It implements [group.Point] by wrapping gnark-crypto's PointAffine.
//
// Points are represented in affine coordinates (x, y) on the twisted
// Edwards curve. The identity element is (0, 1).
type Point struct {
	inner twistededwards.PointAffine
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	p.inner.Add(&aPoint.inner, &bPoint.inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	var negB twistededwards.PointAffine
	negB.Neg(&bPoint.inner)
	p.inner.Add(&aPoint.inner, &negB)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Neg(&aPoint.inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qPoint := q.(*Point)
	p.inner.ScalarMultiplication(&qPoint.inner, scalar.inner)
	return p
}

// ScalarBaseMult sets p to s * G, where G is the curve's base point,
// and returns p.
func (p *Point) ScalarBaseMult(s group.Scalar) group.Point {
	scalar := s.(*Scalar)
	p.inner.ScalarMultiplication(&curveBase, scalar.inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Set(&aPoint.inner)
	return p
}

// Bytes returns the compressed point encoding as a byte slice.
func (p *Point) Bytes() []byte {
	bytes := p.inner.Bytes()
	return bytes[:]
}

// SetBytes sets p from a compressed point encoding and returns p.
// Returns an error if the data does not represent a valid curve point.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if err := p.inner.Unmarshal(data); err != nil {
		return nil, err
	}
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	bPoint := b.(*Point)
	return p.inner.Equal(&bPoint.inner)
}

// IsIdentity reports whether p is the identity element (0, 1).
func (p *Point) IsIdentity() bool {
	return p.inner.IsZero()
}

// BJJ implements [group.Group] for the Baby Jubjub curve.
//
// BJJ is a zero-sized type that provides access to Baby Jubjub curve
// operations. Create an instance with &BJJ{} or new(BJJ).
type BJJ struct{}

// NewScalar returns a new scalar initialized to zero.
func (g *BJJ) NewScalar() group.Scalar {
	return newScalar()
}

// NewPoint returns a new point initialized to the identity element (0, 1).
func (g *BJJ) NewPoint() group.Point {
	var p Point
	p.inner.X.SetZero()
	p.inner.Y.SetOne()
	return &p
}

// Generator returns the standard base point for the Baby Jubjub curve.
func (g *BJJ) Generator() group.Point {
	var p Point
	p.inner.Set(&curveBase)
	return &p
}

// RandomScalar generates a cryptographically random scalar using the
// provided random source. 64 bytes are read and reduced, giving a
// uniform distribution in [0, curveOrder).
func (g *BJJ) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := newScalar()
	s.inner.SetBytes(buf[:])
	s.reduce()
	return s, nil
}

// SecretScalar derives a secret scalar from 32 bytes of randomness
// following the Baby Jubjub keypair convention: the seed is hashed with
// Blake2b-512 and the first half of the digest is pruned like an
// ed25519 key (low three bits cleared, top bit cleared, second-highest
// bit set), interpreted as little-endian, and reduced.
func (g *BJJ) SecretScalar(r io.Reader) (group.Scalar, error) {
	var seed [32]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return nil, fmt.Errorf("failed to read key seed: %w", err)
	}
	h := digest("key", seed[:])
	var buf [32]byte
	copy(buf[:], h[:32])
	buf[0] &= 0xF8
	buf[31] &= 0x7F
	buf[31] |= 0x40

	s := newScalar()
	s.inner.SetBytes(reverse(buf[:]))
	s.reduce()
	return s, nil
}

// HashToScalar hashes the provided data to a scalar using Blake2b-512
// with domain separation. The 64-byte digest is interpreted as
// little-endian and reduced modulo the curve order.
func (g *BJJ) HashToScalar(data ...[]byte) (group.Scalar, error) {
	h := digest("scalar", data...)
	s := newScalar()
	s.inner.SetBytes(reverse(h))
	s.reduce()
	return s, nil
}

// HashToPoint hashes the provided data to a point in the prime-order
// subgroup using try-and-increment: counter-suffixed digests are decoded
// as compressed points until one parses, then the cofactor is cleared.
// The result is never the identity and has no known discrete logarithm
// relative to the base point.
func (g *BJJ) HashToPoint(data ...[]byte) (group.Point, error) {
	var msg []byte
	for _, d := range data {
		msg = append(msg, d...)
	}
	for ctr := 0; ctr < 256; ctr++ {
		h := digest("point", msg, []byte{byte(ctr)})
		var p Point
		if err := p.inner.Unmarshal(h[:32]); err != nil {
			continue
		}
		p.inner.ScalarMultiplication(&p.inner, cofactor)
		if p.inner.IsZero() {
			continue
		}
		return &p, nil
	}
	// Each attempt decodes with probability ~1/2.
	return nil, errors.New("no curve point found in 256 attempts")
}

// Order returns the order of the Baby Jubjub curve's prime-order subgroup
// as a big-endian byte slice.
func (g *BJJ) Order() []byte {
	return curveOrder.Bytes()
}
