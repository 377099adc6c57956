package arbiter

import (
	"fmt"
	"time"

	"github.com/openchan/openchan/state"
	"github.com/stellar/go/keypair"
)

// Open escrows the opener's deposit and creates a channel between the opener
// and the counterparty in the Open status. The opener becomes agent A and
// the counterparty agent B. Only one active channel may exist between the
// same two parties over the same asset, in either role ordering.
func (a *Arbiter) Open(opener, counterparty *keypair.FromAddress, asset state.Asset, amount int64, challengePeriod time.Duration) (state.ChannelID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if opener == nil || counterparty == nil {
		return state.ChannelID{}, fmt.Errorf("opening channel: %w", ErrInvalidParty)
	}
	if counterparty.Address() == opener.Address() {
		return state.ChannelID{}, fmt.Errorf("opening channel with self: %w", ErrInvalidParty)
	}
	if challengePeriod <= 0 {
		return state.ChannelID{}, fmt.Errorf("opening channel: %w", ErrInvalidChallenge)
	}
	// Not left to the ledger: a permissive ledger accepting a negative
	// transfer would create a channel the validator's non-negative balance
	// check makes unsettleable.
	if amount < 0 {
		return state.ChannelID{}, fmt.Errorf("opening channel with deposit %d: %w", amount, ErrInvalidDeposit)
	}
	key := newPairKey(opener, counterparty, asset)
	if _, exists := a.pairs[key]; exists {
		return state.ChannelID{}, fmt.Errorf("opening channel between %s and %s over %s: %w",
			opener.Address(), counterparty.Address(), asset, ErrDuplicateChannel)
	}

	// The escrow transfer is the last step that can fail. Nothing has been
	// recorded yet, so a failure here leaves no partial state behind.
	if err := a.ledger.TransferIn(opener, amount); err != nil {
		return state.ChannelID{}, fmt.Errorf("escrowing opener deposit of %d: %v: %w", amount, err, ErrTransferFailed)
	}

	ch := state.NewChannel(state.Config{
		NetworkPassphrase: a.networkPassphrase,
		AgentA:            opener,
		AgentB:            counterparty,
		Asset:             asset,
		DepositA:          amount,
		ChallengePeriod:   challengePeriod,
		OpenedAt:          a.clock(),
	})
	a.channels[ch.ID()] = ch
	a.pairs[key] = ch.ID()

	a.logf("channel %s opened by %s against %s", ch.ID(), opener.Address(), counterparty.Address())
	a.emit(OpenedEvent{
		ID:              ch.ID(),
		AgentA:          ch.AgentA(),
		AgentB:          ch.AgentB(),
		Asset:           ch.Asset(),
		DepositA:        ch.DepositA(),
		ChallengePeriod: ch.ChallengePeriod(),
	})
	return ch.ID(), nil
}

// Join escrows the counterparty's deposit and moves the channel from Open to
// Joined. Only the stored agent B may join, and only with the channel's
// asset.
func (a *Arbiter) Join(caller *keypair.FromAddress, id state.ChannelID, asset state.Asset, amount int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ch, err := a.lookup(id)
	if err != nil {
		return err
	}
	if caller == nil || caller.Address() != ch.AgentB().Address() {
		return fmt.Errorf("joining channel %s: %w", id, ErrUnauthorized)
	}
	if amount < 0 {
		return fmt.Errorf("joining channel %s with deposit %d: %w", id, amount, ErrInvalidDeposit)
	}

	if err := a.ledger.TransferIn(caller, amount); err != nil {
		return fmt.Errorf("escrowing joiner deposit of %d: %v: %w", amount, err, ErrTransferFailed)
	}
	if err := ch.Join(asset, amount); err != nil {
		// Reverse the escrow so the failed join leaves the channel and the
		// ledger exactly as they were.
		if rerr := a.ledger.TransferOut(caller, amount); rerr != nil {
			return fmt.Errorf("reversing joiner deposit of %d after failed join (%v): %v: %w", amount, err, rerr, ErrTransferFailed)
		}
		return err
	}

	a.logf("channel %s joined by %s", id, caller.Address())
	a.emit(JoinedEvent{
		ID:       ch.ID(),
		AgentA:   ch.AgentA(),
		AgentB:   ch.AgentB(),
		Asset:    ch.Asset(),
		DepositA: ch.DepositA(),
		DepositB: ch.DepositB(),
	})
	return nil
}
