package state

import (
	"time"

	"github.com/stellar/go/keypair"
)

// Snapshot is a copy of a channel's state at a point in time. Snapshots are
// plain values that marshal to text-friendly forms, for use by queries,
// notifications, and persistence. A Snapshot taken from a channel can be
// restored into an equivalent channel with NewChannelFromSnapshot.
type Snapshot struct {
	ID     ChannelID
	AgentA *keypair.FromAddress
	AgentB *keypair.FromAddress
	Asset  Asset

	DepositA int64
	DepositB int64
	BalanceA int64
	BalanceB int64

	Status          Status
	ChallengePeriod time.Duration
	Nonce           int64
	CloseTime       time.Time
}

// Snapshot returns a copy of the channel's current state.
func (c *Channel) Snapshot() Snapshot {
	return Snapshot{
		ID:     c.id,
		AgentA: c.agentA,
		AgentB: c.agentB,
		Asset:  c.asset,

		DepositA: c.depositA,
		DepositB: c.depositB,
		BalanceA: c.balanceA,
		BalanceB: c.balanceB,

		Status:          c.status,
		ChallengePeriod: c.challengePeriod,
		Nonce:           c.nonce,
		CloseTime:       c.closeTime,
	}
}

// NewChannelFromSnapshot restores a channel from a snapshot taken earlier.
// The snapshot's ID is kept as-is rather than rederived, since the opened-at
// time that went into the derivation is not part of the snapshot.
func NewChannelFromSnapshot(networkPassphrase string, s Snapshot) *Channel {
	return &Channel{
		networkPassphrase: networkPassphrase,

		id:     s.ID,
		agentA: s.AgentA,
		agentB: s.AgentB,
		asset:  s.Asset,

		depositA: s.DepositA,
		depositB: s.DepositB,
		balanceA: s.BalanceA,
		balanceB: s.BalanceB,

		status:          s.Status,
		challengePeriod: s.ChallengePeriod,
		nonce:           s.Nonce,
		closeTime:       s.CloseTime,
	}
}
