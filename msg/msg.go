// Package msg defines the messages two agents exchange off-channel while
// negotiating a balance update, and a codec for them. Delivery is up to the
// agents; any ordered reliable byte stream will do.
package msg

import (
	"encoding/gob"
	"io"

	"github.com/google/uuid"
	"github.com/stellar/go/keypair"

	"github.com/openchan/openchan/state"
)

type Type int

const (
	TypeHello              Type = 10
	TypeUpdateProposal     Type = 30
	TypeUpdateConfirmation Type = 31
)

type Message struct {
	Type Type

	// ID correlates a confirmation with the proposal it answers.
	ID string

	Hello *Hello

	UpdateProposal     *UpdateProposal
	UpdateConfirmation *UpdateConfirmation
}

// NewID returns a fresh correlation ID for a proposal.
func NewID() string {
	return uuid.NewString()
}

// Hello identifies the sending agent at the start of a connection.
type Hello struct {
	Agent keypair.FromAddress
}

// UpdateProposal carries a balance update signed by the proposer only. The
// signature is over the wrapped update digest, the same digest the arbiter
// verifies.
type UpdateProposal struct {
	ChannelID state.ChannelID
	Details   state.UpdateDetails
	Signature []byte
}

// UpdateConfirmation carries a balance update signed by both participants,
// ready for either of them to submit to the arbiter.
type UpdateConfirmation struct {
	ChannelID  state.ChannelID
	Details    state.UpdateDetails
	SignatureA []byte
	SignatureB []byte
}

type Encoder = gob.Encoder

func NewEncoder(w io.Writer) *Encoder {
	return gob.NewEncoder(w)
}

type Decoder = gob.Decoder

func NewDecoder(r io.Reader) *Decoder {
	return gob.NewDecoder(r)
}
