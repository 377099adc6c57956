package state

import (
	"fmt"
	"time"

	"github.com/stellar/go/keypair"
)

type Status string

const (
	StatusOpen      = Status("open")
	StatusJoined    = Status("joined")
	StatusChallenge = Status("challenge")
	StatusClosed    = Status("closed")
)

// Channel tracks the escrowed deposits and the latest accepted balances of
// the two participants of a payment channel. Participants and the asset are
// immutable after creation. Balances and the nonce change only through
// ApplyUpdate, which requires a valid signature from each participant.
type Channel struct {
	networkPassphrase string

	id     ChannelID
	agentA *keypair.FromAddress
	agentB *keypair.FromAddress
	asset  Asset

	depositA int64
	depositB int64
	balanceA int64
	balanceB int64

	status          Status
	challengePeriod time.Duration
	nonce           int64
	closeTime       time.Time
}

type Config struct {
	NetworkPassphrase string

	AgentA *keypair.FromAddress
	AgentB *keypair.FromAddress
	Asset  Asset

	DepositA        int64
	ChallengePeriod time.Duration

	OpenedAt time.Time
}

// NewChannel constructs a channel in the Open status holding agent A's
// deposit. The caller is responsible for having escrowed the deposit before
// constructing the channel. Agent B's deposit and balance stay zero until the
// channel is joined, keeping the conservation invariant
// balanceA+balanceB == depositA+depositB from the start.
func NewChannel(c Config) *Channel {
	return &Channel{
		networkPassphrase: c.NetworkPassphrase,
		id:                NewChannelID(c.NetworkPassphrase, c.AgentA, c.AgentB, c.Asset, c.OpenedAt),
		agentA:            c.AgentA,
		agentB:            c.AgentB,
		asset:             c.Asset,
		depositA:          c.DepositA,
		balanceA:          c.DepositA,
		status:            StatusOpen,
		challengePeriod:   c.ChallengePeriod,
	}
}

func (c *Channel) ID() ChannelID                  { return c.id }
func (c *Channel) AgentA() *keypair.FromAddress   { return c.agentA }
func (c *Channel) AgentB() *keypair.FromAddress   { return c.agentB }
func (c *Channel) Asset() Asset                   { return c.asset }
func (c *Channel) DepositA() int64                { return c.depositA }
func (c *Channel) DepositB() int64                { return c.depositB }
func (c *Channel) BalanceA() int64                { return c.balanceA }
func (c *Channel) BalanceB() int64                { return c.balanceB }
func (c *Channel) Status() Status                 { return c.status }
func (c *Channel) ChallengePeriod() time.Duration { return c.challengePeriod }
func (c *Channel) Nonce() int64                   { return c.nonce }

// CloseTime returns the time after which an unresolved challenge may be
// finalized. It is the zero time until a challenge has started.
func (c *Channel) CloseTime() time.Time { return c.closeTime }

// IsParty returns true if the given participant is one of the channel's two
// agents.
func (c *Channel) IsParty(p *keypair.FromAddress) bool {
	if p == nil {
		return false
	}
	return p.Address() == c.agentA.Address() || p.Address() == c.agentB.Address()
}

// Join records agent B's deposit and moves the channel from Open to Joined.
// The caller is responsible for having escrowed the deposit beforehand, and
// for reversing the escrow if Join fails.
func (c *Channel) Join(asset Asset, amount int64) error {
	if c.status != StatusOpen {
		return fmt.Errorf("joining channel in status %s: %w", c.status, ErrInvalidStatus)
	}
	if !c.asset.EqualCanonical(asset) {
		return fmt.Errorf("joining with asset %s, channel asset %s: %w", asset, c.asset, ErrAssetMismatch)
	}
	c.depositB = amount
	c.balanceB = amount
	c.status = StatusJoined
	return nil
}

// ApplyUpdate validates a balance update signed by both participants and, if
// it is admissible, overwrites the channel's balances and nonce. Any balance
// change requires bilateral consent, so signatures from both agent A and
// agent B are always required.
func (c *Channel) ApplyUpdate(d UpdateDetails, sigA, sigB []byte) error {
	return c.applyUpdate(d, sigA, sigB, true, true)
}

// applyUpdate is the general form of the update validator with independently
// toggleable signature requirements. Only the bilateral form is exported;
// the toggles exist so that a future unilateral update, such as a top-up,
// can reuse the same validation path.
func (c *Channel) applyUpdate(d UpdateDetails, sigA, sigB []byte, requireSigA, requireSigB bool) error {
	if d.BalanceA < 0 || d.BalanceB < 0 || d.BalanceA+d.BalanceB != c.depositA+c.depositB {
		return fmt.Errorf("update balances %d/%d against deposits %d/%d: %w",
			d.BalanceA, d.BalanceB, c.depositA, c.depositB, ErrBalanceMismatch)
	}
	if c.status != StatusJoined && c.status != StatusChallenge {
		return fmt.Errorf("updating channel in status %s: %w", c.status, ErrInvalidStatus)
	}
	if d.Nonce <= c.nonce {
		return fmt.Errorf("update nonce %d, current nonce %d: %w", d.Nonce, c.nonce, ErrNonceTooLow)
	}
	h := HashUpdate(c.networkPassphrase, c.id, d)
	inputs := []signatureVerificationInput{}
	if requireSigA {
		inputs = append(inputs, signatureVerificationInput{Hash: h, Signature: sigA, Signer: c.agentA})
	}
	if requireSigB {
		inputs = append(inputs, signatureVerificationInput{Hash: h, Signature: sigB, Signer: c.agentB})
	}
	if err := verifySignatures(inputs); err != nil {
		return fmt.Errorf("verifying update %d: %w", d.Nonce, err)
	}
	c.balanceA = d.BalanceA
	c.balanceB = d.BalanceB
	c.nonce = d.Nonce
	return nil
}

// StartChallenge moves the channel into the Challenge status and fixes the
// close time. A challenge can start from Open as well as Joined, so that an
// opener whose counterparty never joins is not locked out of their deposit.
func (c *Channel) StartChallenge(now time.Time) error {
	if c.status != StatusOpen && c.status != StatusJoined {
		return fmt.Errorf("challenging channel in status %s: %w", c.status, ErrInvalidStatus)
	}
	c.status = StatusChallenge
	c.closeTime = now.Add(c.challengePeriod)
	return nil
}

// Closable reports whether an unresolved challenge may be finalized at the
// given time. The close time itself is not sufficient: the full challenge
// period must have elapsed, so the comparison is strict.
func (c *Channel) Closable(now time.Time) error {
	if c.status != StatusChallenge {
		return fmt.Errorf("closing channel in status %s: %w", c.status, ErrInvalidStatus)
	}
	if !now.After(c.closeTime) {
		return fmt.Errorf("close time %s not passed at %s: %w", c.closeTime, now, ErrChallengePeriodNotElapsed)
	}
	return nil
}

// Close marks the channel closed. The caller must have verified Closable and
// disbursed both balances first. Closed is terminal.
func (c *Channel) Close() {
	c.status = StatusClosed
}
