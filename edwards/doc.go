// Package edwards provides an edwards25519 elliptic curve implementation
// of the [group.Group] interface for use with distributed key generation.
//
// Edwards25519 is the twisted Edwards curve birationally equivalent to
// Curve25519, standardized in RFC 7748 and used by the Ed25519 signature
// scheme. It offers fast, complete addition formulas and a conservative
// security level.
//
// This package wraps filippo.io/edwards25519, providing a clean interface
// that satisfies [group.Group], [group.Scalar], and [group.Point].
//
// # Curve Parameters
//
// Edwards25519 is defined by the equation:
//
//	-x^2 + y^2 = 1 + d*x^2*y^2
//
// over GF(2^255 - 19), with d = -121665/121666.
//
// The curve has cofactor 8 and a prime-order subgroup of size:
//
//	2^252 + 27742317777372353535851937790883648493
//
// All points produced by this package lie in the prime-order subgroup;
// HashToPoint clears the cofactor before returning.
//
// # Usage
//
// Create an Edwards group and use it for key generation:
//
//	g := &edwards.Edwards{}
//	d, err := dkg.New(g, threshold, total)
//
// The Edwards type implements [group.Group] and can be used anywhere a
// Group is required.
//
// # Security
//
// This implementation relies on filippo.io/edwards25519 for the underlying
// curve arithmetic, which is constant-time throughout. Scalar decoding is
// strict: SetBytes rejects non-canonical encodings rather than reducing
// them.
package edwards
