// Package dkg implements a (t,n)-threshold distributed key generation
// protocol over an arbitrary prime-order elliptic curve group.
//
// n parties jointly generate a shared public key whose corresponding
// secret is never held by any single party. Any t of the n parties can
// later reconstruct the secret, while fewer than t learn nothing. The
// protocol composes three primitives:
//
//   - Pedersen commitments blind each party's public contribution until
//     every party has committed, so no one can bias the joint key.
//   - Feldman verifiable secret sharing lets each recipient check that
//     the share it received is consistent with the dealer's publicly
//     committed polynomial, without learning the polynomial.
//   - Shamir reconstruction via Lagrange interpolation at zero recovers
//     the secret (or verifies threshold consistency) from any t valid
//     shares.
//
// # Protocol Rounds
//
// The ceremony proceeds in two broadcast rounds plus private share
// delivery:
//
//  1. Each party publishes a blinded commitment to its public key using
//     [Participant.Round1Broadcast].
//  2. After all n commitments are collected, each party opens its
//     commitment with [Participant.Round2Broadcast] (blinder plus
//     verification vector) and sends one private share to every other
//     party using [DKG.Round2PrivateSend].
//  3. Each party checks the openings with [DKG.VerifyOpening] and its
//     received shares with [DKG.ReceiveShare]. A failed share check is
//     published as a [Complaint], which any party can adjudicate with
//     [DKG.Judge].
//  4. Each party computes its final key share and the joint public key
//     using [DKG.Finalize].
//
// # Example
//
// Basic ceremony with a 2-of-3 threshold:
//
//	d, _ := dkg.New(g, 2, 3)
//
//	parties := make([]*dkg.Participant, 3)
//	for i := range parties {
//	    parties[i], _ = d.NewParticipant(rand.Reader, i+1)
//	}
//	// ... exchange round 1 commitments, then openings and shares ...
//	shares := make([]*dkg.KeyShare, 3)
//	for i, p := range parties {
//	    shares[i], _ = d.Finalize(p, commitments, openings)
//	}
//
//	// Recover the joint secret from any 2 shares (testing only).
//	secret, _ := d.ReconstructSecret(shares[:2])
//
// # Security Considerations
//
// Each party must run in its own isolated context and communicate only
// through the published artifacts; secrets, blinders, and polynomial
// coefficients never cross a party boundary. Blinders must not be
// released before every round 1 commitment has been collected. Share
// delivery requires a private, authenticated channel, and randomness
// must come from an independent, cryptographically secure source per
// party. Transport, persistence, and the complaint broadcast mechanics
// are the caller's responsibility.
package dkg
