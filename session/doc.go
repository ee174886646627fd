// Package session provides a high-level API for distributed key
// generation ceremonies. It wraps the low-level primitives in the [dkg]
// package with a simpler interface that handles round sequencing and
// prevents common mistakes like releasing a blinder before every
// commitment has been collected.
//
// The session package is designed for application developers who want
// to run a ceremony without understanding every protocol detail. For
// full control over the protocol, use the [dkg] package directly.
//
// # Ceremony
//
// A ceremony creates key shares for all participants. Each participant
// runs the same code independently:
//
//	// Create participant state
//	p, err := session.NewParticipant(group, threshold, total, myID)
//	if err != nil {
//		return err
//	}
//
//	// Generate and broadcast the round 1 commitment
//	commitment, err := p.GenerateRound1(rand.Reader)
//	if err != nil {
//		return err
//	}
//
//	// After collecting commitments from ALL participants:
//	if err := p.RegisterRound1(allCommitments); err != nil {
//		return err
//	}
//
//	// Open the commitment and deal shares
//	r2, err := p.GenerateRound2()
//	if err != nil {
//		return err
//	}
//	// Broadcast r2.Broadcast to all participants
//	// Send r2.PrivateShares[id] to each participant over secure channel
//
//	// After receiving messages from all other participants:
//	result, err := p.ProcessRound2(&session.Round2Input{
//		Openings:      receivedOpenings,
//		PrivateShares: receivedShares,
//	})
//
//	// Store result.KeyShare securely
//
// # Complaints
//
// If a received share fails verification, ProcessRound2 returns an
// error wrapping [dkg.ErrVerification] and records a complaint for each
// inconsistent share instead of finalizing. Complaints carry the
// disputed share, which is published so that every other party can
// re-run the check with [dkg.DKG.Judge] and exclude or clear the
// accused dealer. The ceremony is then rerun without any excluded
// party.
//
// # Transport Agnostic
//
// This package does not handle network communication. You are
// responsible for distributing messages between participants using your
// preferred transport (TCP, HTTP, libp2p, etc.) and for delivering
// shares over private, authenticated channels. The package only manages
// protocol state and message generation.
package session
