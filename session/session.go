package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/dvshur/pedersen-curve25519-keygen/dkg"
	"github.com/dvshur/pedersen-curve25519-keygen/group"
)

// Participant manages a single party's state through one key generation
// ceremony. Create instances using [NewParticipant].
type Participant struct {
	id          int
	dkg         *dkg.DKG
	state       *dkg.Participant
	commitments map[int]*dkg.Round1Data
	keyShare    *dkg.KeyShare
	complaints  []*dkg.Complaint
	opened      bool
	finalized   bool
}

// Result contains the output of a successful ceremony.
type Result struct {
	// KeyShare is this participant's share of the distributed key.
	// Store this securely; it is required for any later use of the key.
	KeyShare *dkg.KeyShare

	// GroupKey is the joint public key for the threshold group.
	// It is the same for all participants.
	GroupKey group.Point

	// PublicKeys maps participant IDs to their individual public keys,
	// taken from the constant-term commitments of their verification
	// vectors.
	PublicKeys map[int]group.Point
}

// Round2Output contains all messages generated during round 2.
type Round2Output struct {
	// Broadcast opens this participant's round 1 commitment and must be
	// sent to all participants.
	Broadcast *dkg.Round2Data

	// PrivateShares maps recipient participant ID to their share. Each
	// share must be sent only to its recipient over a secure,
	// authenticated channel.
	PrivateShares map[int]*dkg.Round2PrivateData
}

// Round2Input contains all messages received during round 2.
type Round2Input struct {
	// Openings contains the round 2 broadcasts from all participants
	// (including this participant's own).
	Openings []*dkg.Round2Data

	// PrivateShares contains the shares addressed to this participant
	// from all other participants.
	PrivateShares []*dkg.Round2PrivateData
}

// NewParticipant creates a new participant for a key generation ceremony.
//
// Parameters:
//   - g: The cryptographic group to use (e.g., &edwards.Edwards{})
//   - threshold: Minimum number of parties required to reconstruct (t)
//   - total: Total number of participants (n)
//   - id: This participant's unique identifier (1 to n)
//
// The returned Participant drives one ceremony from commitment through
// finalization.
func NewParticipant(g group.Group, threshold, total, id int) (*Participant, error) {
	if id < 1 || id > total {
		return nil, fmt.Errorf("participant ID must be between 1 and %d, got %d", total, id)
	}

	d, err := dkg.New(g, threshold, total)
	if err != nil {
		return nil, fmt.Errorf("failed to create DKG instance: %w", err)
	}

	return &Participant{
		id:  id,
		dkg: d,
	}, nil
}

// ID returns this participant's identifier.
func (p *Participant) ID() int {
	return p.id
}

// KeyShare returns this participant's key share after the ceremony
// completes. Returns nil if the ceremony has not been finalized.
func (p *Participant) KeyShare() *dkg.KeyShare {
	return p.keyShare
}

// DKG returns the underlying protocol instance for advanced use cases.
func (p *Participant) DKG() *dkg.DKG {
	return p.dkg
}

// Complaints returns the complaints raised while processing round 2, in
// the order they were generated. Publish them so that other parties can
// adjudicate with [dkg.DKG.Judge]; a ceremony with an upheld complaint
// is abandoned and rerun without the offending dealer.
func (p *Participant) Complaints() []*dkg.Complaint {
	return p.complaints
}

// GenerateRound1 creates this participant's secret state and returns
// the blinded commitment to broadcast to all participants. The
// verification vector, blinder, and shares are not released until
// round 2.
func (p *Participant) GenerateRound1(rng io.Reader) (*dkg.Round1Data, error) {
	if p.state != nil {
		return nil, errors.New("round 1 already generated")
	}

	state, err := p.dkg.NewParticipant(rng, p.id)
	if err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}
	p.state = state

	return state.Round1Broadcast(), nil
}

// RegisterRound1 records the round 1 commitments from all participants.
// It must be called with the complete set before [GenerateRound2] will
// release this participant's blinder; opening a commitment while any
// other party's commitment is still outstanding would defeat the
// blinding.
//
// The broadcasts must contain exactly one commitment per participant,
// including this participant's own.
func (p *Participant) RegisterRound1(broadcasts []*dkg.Round1Data) error {
	if p.state == nil {
		return errors.New("must call GenerateRound1 before RegisterRound1")
	}
	if p.commitments != nil {
		return errors.New("round 1 broadcasts already registered")
	}
	if len(broadcasts) != p.dkg.Total() {
		return fmt.Errorf("got %d broadcasts, want %d", len(broadcasts), p.dkg.Total())
	}

	commitments := make(map[int]*dkg.Round1Data, len(broadcasts))
	for _, b := range broadcasts {
		if b.ID < 1 || b.ID > p.dkg.Total() {
			return fmt.Errorf("broadcast from unknown participant %d", b.ID)
		}
		if _, exists := commitments[b.ID]; exists {
			return fmt.Errorf("duplicate broadcast from participant %d", b.ID)
		}
		commitments[b.ID] = b
	}

	// The set is complete and deduplicated, so our own entry exists.
	if !commitments[p.id].Commitment.Equal(p.state.Round1Broadcast().Commitment) {
		return errors.New("registered broadcast does not match own commitment")
	}

	p.commitments = commitments
	return nil
}

// GenerateRound2 opens this participant's commitment and evaluates its
// polynomial for every other participant. It refuses to run until
// [RegisterRound1] has recorded all round 1 commitments.
//
// The broadcast goes to all participants; each private share goes only
// to its recipient.
func (p *Participant) GenerateRound2() (*Round2Output, error) {
	if p.commitments == nil {
		return nil, errors.New("must call RegisterRound1 before GenerateRound2")
	}
	if p.opened {
		return nil, errors.New("round 2 already generated")
	}

	privateShares := make(map[int]*dkg.Round2PrivateData)
	for id := 1; id <= p.dkg.Total(); id++ {
		if id == p.id {
			continue // no share to ourselves
		}
		privateShares[id] = p.dkg.Round2PrivateSend(p.state, id)
	}

	p.opened = true
	return &Round2Output{
		Broadcast:     p.state.Round2Broadcast(),
		PrivateShares: privateShares,
	}, nil
}

// ProcessRound2 verifies the received openings and shares and completes
// the ceremony.
//
// Every opening is checked against its registered round 1 commitment
// before any share is touched. Shares that fail the Feldman check are
// recorded as complaints rather than aborting the loop, so one
// dishonest dealer cannot mask another; if any complaint was raised,
// ProcessRound2 returns an error wrapping [dkg.ErrVerification] and the
// ceremony is not finalized. Retrieve the complaints with [Complaints].
//
// The input must contain openings from ALL participants (including this
// one) and shares from all OTHER participants.
func (p *Participant) ProcessRound2(input *Round2Input) (*Result, error) {
	if !p.opened {
		return nil, errors.New("must call GenerateRound2 before ProcessRound2")
	}
	if p.finalized {
		return nil, errors.New("ceremony already finalized")
	}

	openings := make(map[int]*dkg.Round2Data, len(input.Openings))
	for _, opening := range input.Openings {
		commitment, ok := p.commitments[opening.ID]
		if !ok {
			return nil, fmt.Errorf("opening from unknown participant %d", opening.ID)
		}
		if _, exists := openings[opening.ID]; exists {
			return nil, fmt.Errorf("duplicate opening from participant %d", opening.ID)
		}
		if err := p.dkg.VerifyOpening(commitment, opening); err != nil {
			return nil, err
		}
		openings[opening.ID] = opening
	}
	if len(openings) != p.dkg.Total() {
		return nil, fmt.Errorf("got %d openings, want %d", len(openings), p.dkg.Total())
	}

	for _, share := range input.PrivateShares {
		dealer, ok := openings[share.FromID]
		if !ok {
			return nil, fmt.Errorf("share from unknown participant %d", share.FromID)
		}

		err := p.dkg.ReceiveShare(p.state, share, dealer)
		if errors.Is(err, dkg.ErrVerification) {
			p.complaints = append(p.complaints, &dkg.Complaint{
				Dealer:  share.FromID,
				Accuser: p.id,
				Share:   share.Share,
			})
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	if len(p.complaints) > 0 {
		return nil, fmt.Errorf("%d shares failed verification: %w", len(p.complaints), dkg.ErrVerification)
	}

	commitments := make([]*dkg.Round1Data, 0, len(p.commitments))
	for _, c := range p.commitments {
		commitments = append(commitments, c)
	}

	keyShare, err := p.dkg.Finalize(p.state, commitments, input.Openings)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize ceremony: %w", err)
	}

	p.keyShare = keyShare
	p.finalized = true
	p.state = nil // secret round state no longer needed

	// The constant-term commitment of each opening is that party's
	// individual public key.
	publicKeys := make(map[int]group.Point, len(openings))
	for id, opening := range openings {
		publicKeys[id] = opening.VerificationVector[0]
	}

	return &Result{
		KeyShare:   keyShare,
		GroupKey:   keyShare.GroupKey,
		PublicKeys: publicKeys,
	}, nil
}

// SetKeyShare installs a previously saved key share.
// Use this when restoring a participant from persistent storage.
func (p *Participant) SetKeyShare(ks *dkg.KeyShare) {
	p.keyShare = ks
	p.finalized = true
}
