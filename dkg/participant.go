package dkg

import (
	"fmt"
	"io"

	"github.com/dvshur/pedersen-curve25519-keygen/group"
)

// Round1Data is broadcast by each party in round 1: the blinded
// commitment to its public key. Verification vectors and blinders stay
// private until every party's commitment has been collected.
type Round1Data struct {
	ID         int
	Commitment group.Point
}

// Round2Data is broadcast by each party in round 2 and opens its round
// 1 commitment: the blinder and the verification vector committing to
// its polynomial coefficients.
type Round2Data struct {
	ID                 int
	Blinder            group.Scalar
	VerificationVector []group.Point
}

// Round2PrivateData carries a polynomial evaluation from one party to
// another. It must be delivered over a private, authenticated channel.
type Round2PrivateData struct {
	FromID int
	ToID   int
	Share  group.Scalar
}

// Complaint accuses a dealer of distributing an inconsistent share.
// Publishing it makes the disputed share public, so every party can
// re-run the Feldman check and either clear or exclude the dealer.
type Complaint struct {
	Dealer  int
	Accuser int
	Share   group.Scalar
}

// Participant holds one party's secret state during key generation.
// Each party exclusively owns its key pair, blinder, and polynomial;
// nothing outside the party may read them. Only derived public
// artifacts leave through the Round methods.
type Participant struct {
	id             int
	index          group.Scalar
	key            *KeyPair
	blinder        group.Scalar
	poly           *Polynomial
	commitment     group.Point
	receivedShares map[int]group.Scalar // shares from other parties, by dealer ID
}

// NewParticipant creates party id with a fresh key pair, blinder, and
// degree-(t-1) polynomial whose constant term is the party's secret.
// The share index is the scalar value of id, so id must be at least 1:
// index zero would evaluate every polynomial at its constant term.
func (d *DKG) NewParticipant(r io.Reader, id int) (*Participant, error) {
	if id < 1 {
		return nil, fmt.Errorf("participant ID must be at least 1, got %d", id)
	}

	key, err := GenerateKeyPair(d.group, r)
	if err != nil {
		return nil, err
	}

	blinder, err := d.group.RandomScalar(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	poly, err := RandomPolynomial(d.group, r, key.Secret, d.threshold-1)
	if err != nil {
		return nil, err
	}

	return &Participant{
		id:             id,
		index:          d.scalarFromInt(id),
		key:            key,
		blinder:        blinder,
		poly:           poly,
		commitment:     d.Blind(key.Public, blinder),
		receivedShares: make(map[int]group.Scalar),
	}, nil
}

// ID returns the party identifier.
func (p *Participant) ID() int {
	return p.id
}

// PublicKey returns the party's individual public key.
func (p *Participant) PublicKey() group.Point {
	return p.key.Public
}

// Round1Broadcast returns the blinded commitment to publish in round 1.
func (p *Participant) Round1Broadcast() *Round1Data {
	return &Round1Data{
		ID:         p.id,
		Commitment: p.commitment,
	}
}

// Round2Broadcast returns the opening of the round 1 commitment. The
// caller must not release it until all n round 1 commitments have been
// collected; revealing a blinder earlier defeats the blinding.
func (p *Participant) Round2Broadcast() *Round2Data {
	return &Round2Data{
		ID:                 p.id,
		Blinder:            p.blinder,
		VerificationVector: p.poly.VerificationVector(),
	}
}

// Round2PrivateSend returns the share of p's polynomial addressed to
// recipientID, for delivery over a private channel.
func (d *DKG) Round2PrivateSend(p *Participant, recipientID int) *Round2PrivateData {
	return &Round2PrivateData{
		FromID: p.id,
		ToID:   recipientID,
		Share:  p.poly.Evaluate(d.scalarFromInt(recipientID)),
	}
}

// VerifyOpening checks a round 2 opening against the matching round 1
// commitment: the verification vector must have exactly threshold
// entries, and its constant-term commitment F[0] must equal the
// unblinded round 1 commitment, binding the opened polynomial to the
// committed public key. Mismatches are wrapped in ErrVerification.
func (d *DKG) VerifyOpening(commitment *Round1Data, opening *Round2Data) error {
	if commitment.ID != opening.ID {
		return fmt.Errorf("%w: commitment from party %d paired with opening from party %d",
			ErrVerification, commitment.ID, opening.ID)
	}
	if len(opening.VerificationVector) != d.threshold {
		return fmt.Errorf("%w: party %d published %d vector entries, want %d",
			ErrVerification, opening.ID, len(opening.VerificationVector), d.threshold)
	}

	public := d.Unblind(commitment.Commitment, opening.Blinder)
	if !public.Equal(opening.VerificationVector[0]) {
		return fmt.Errorf("%w: party %d's opening does not match its commitment",
			ErrVerification, opening.ID)
	}
	return nil
}

// ReceiveShare verifies a share addressed to p against the dealer's
// opening and stores it for aggregation. A Feldman mismatch is wrapped
// in ErrVerification together with both party IDs; the disputed share
// stays with the caller, which can publish it as a [Complaint].
func (d *DKG) ReceiveShare(p *Participant, data *Round2PrivateData, dealer *Round2Data) error {
	if data.ToID != p.id {
		return fmt.Errorf("share addressed to party %d received by party %d", data.ToID, p.id)
	}
	if data.FromID != dealer.ID {
		return fmt.Errorf("share claims dealer %d but opening is from party %d", data.FromID, dealer.ID)
	}
	if data.FromID == p.id {
		return fmt.Errorf("party %d cannot deal a share to itself", p.id)
	}
	if _, ok := p.receivedShares[data.FromID]; ok {
		return fmt.Errorf("duplicate share from party %d", data.FromID)
	}

	if !VerifyShare(d.group, p.index, data.Share, dealer.VerificationVector) {
		return fmt.Errorf("%w: share from party %d to party %d", ErrVerification, data.FromID, data.ToID)
	}

	p.receivedShares[data.FromID] = data.Share
	return nil
}

// Judge re-runs the Feldman check for a published complaint against the
// accused dealer's verification vector. It returns true if the
// complaint is upheld, meaning the disputed share really is
// inconsistent and the dealer should be excluded, and false if the
// share verifies and the dealer is cleared.
func (d *DKG) Judge(c *Complaint, vector []group.Point) bool {
	return !VerifyShare(d.group, d.scalarFromInt(c.Accuser), c.Share, vector)
}

// KeyShare is a party's final output: its aggregated share of the joint
// secret, the matching public share, and the joint public key.
type KeyShare struct {
	ID          int
	SecretShare group.Scalar
	PublicShare group.Point
	GroupKey    group.Point
}

// Finalize aggregates p's final share and the joint public key once
// every party's commitment, opening, and addressed share is in. The
// secret share is p's own polynomial evaluated at its index plus every
// received share, turning n independent sharings into one (t,n)
// sharing of the aggregate secret. The group key is the sum of all
// unblinded commitments.
//
// Every opening must already have passed [DKG.VerifyOpening] and every
// share [DKG.ReceiveShare].
func (d *DKG) Finalize(p *Participant, commitments []*Round1Data, openings []*Round2Data) (*KeyShare, error) {
	if len(commitments) != d.total {
		return nil, fmt.Errorf("got %d commitments, want %d", len(commitments), d.total)
	}
	if len(openings) != d.total {
		return nil, fmt.Errorf("got %d openings, want %d", len(openings), d.total)
	}
	if len(p.receivedShares) != d.total-1 {
		return nil, fmt.Errorf("party %d holds %d shares, want %d", p.id, len(p.receivedShares), d.total-1)
	}

	byID := make(map[int]*Round1Data, len(commitments))
	for _, c := range commitments {
		byID[c.ID] = c
	}

	blinded := make([]group.Point, 0, d.total)
	blinders := make([]group.Scalar, 0, d.total)
	seen := make(map[int]bool, len(openings))
	for _, opening := range openings {
		if seen[opening.ID] {
			return nil, fmt.Errorf("duplicate opening from party %d", opening.ID)
		}
		seen[opening.ID] = true

		commitment, ok := byID[opening.ID]
		if !ok {
			return nil, fmt.Errorf("no round 1 commitment from party %d", opening.ID)
		}
		blinded = append(blinded, commitment.Commitment)
		blinders = append(blinders, opening.Blinder)
	}

	groupKey, err := d.AggregatePublicKey(blinded, blinders)
	if err != nil {
		return nil, err
	}

	secretShare := p.poly.Evaluate(p.index)
	for _, share := range p.receivedShares {
		secretShare = d.group.NewScalar().Add(secretShare, share)
	}

	return &KeyShare{
		ID:          p.id,
		SecretShare: secretShare,
		PublicShare: d.group.NewPoint().ScalarBaseMult(secretShare),
		GroupKey:    groupKey,
	}, nil
}

// ReconstructSecret recovers the joint secret from threshold or more
// final key shares. A production deployment never calls this; the
// aggregate secret exists only as a recovery and verification artifact.
func (d *DKG) ReconstructSecret(shares []*KeyShare) (group.Scalar, error) {
	samples := make([]*Share, len(shares))
	for i, ks := range shares {
		samples[i] = &Share{
			Index: d.scalarFromInt(ks.ID),
			Value: ks.SecretShare,
		}
	}
	return Reconstruct(d.group, samples, d.threshold)
}
