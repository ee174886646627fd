// Package secp256k1 provides a secp256k1 elliptic curve implementation
// of the [group.Group] interface for use with distributed key generation.
//
// Secp256k1 is the short Weierstrass curve used by Bitcoin and Ethereum.
// Unlike the Edwards curves, it has cofactor 1, so every valid point lies
// in the prime-order group and no cofactor clearing is required.
//
// This package wraps the btcec implementation, providing a clean interface
// that satisfies [group.Group], [group.Scalar], and [group.Point].
//
// # Curve Parameters
//
// Secp256k1 is defined by the equation:
//
//	y^2 = x^3 + 7
//
// over GF(2^256 - 2^32 - 977).
//
// The group order is:
//
//	0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141
//
// # Point Encoding
//
// Points use the standard 33-byte compressed SEC encoding. The point at
// infinity, which has no SEC encoding, is represented as 33 zero bytes.
//
// # Usage
//
// Create a Secp256k1 group and use it for key generation:
//
//	g := &secp256k1.Secp256k1{}
//	d, err := dkg.New(g, threshold, total)
//
// The Secp256k1 type implements [group.Group] and can be used anywhere a
// Group is required.
//
// # Security
//
// This implementation relies on btcec for the underlying curve arithmetic.
// btcec's scalar and point operations are not constant-time; prefer the
// edwards package where timing side channels are a concern. Scalar
// decoding is strict: SetBytes rejects out-of-range encodings rather than
// reducing them.
package secp256k1
