package arbiter

import (
	"time"

	"github.com/openchan/openchan/state"
	"github.com/stellar/go/keypair"
)

// Event is an event that occurred on a channel held by the arbiter. Each
// event is emitted exactly once, synchronously with the state mutation that
// caused it, and only after that mutation has fully succeeded.
type Event interface{}

// OpenedEvent occurs when a channel has been opened and the opener's deposit
// escrowed.
type OpenedEvent struct {
	ID              state.ChannelID
	AgentA          *keypair.FromAddress
	AgentB          *keypair.FromAddress
	Asset           state.Asset
	DepositA        int64
	ChallengePeriod time.Duration
}

// JoinedEvent occurs when the counterparty has joined the channel and their
// deposit has been escrowed.
type JoinedEvent struct {
	ID       state.ChannelID
	AgentA   *keypair.FromAddress
	AgentB   *keypair.FromAddress
	Asset    state.Asset
	DepositA int64
	DepositB int64
}

// UpdatedEvent occurs when a signed balance update has been accepted as the
// channel's new canonical state.
type UpdatedEvent struct {
	ID       state.ChannelID
	Nonce    int64
	BalanceA int64
	BalanceB int64
}

// ChallengedEvent occurs when a challenge has started. The channel may be
// closed strictly after CloseTime.
type ChallengedEvent struct {
	ID        state.ChannelID
	CloseTime time.Time
}

// ClosedEvent occurs when the channel has settled and been removed.
type ClosedEvent struct {
	ID state.ChannelID
}
