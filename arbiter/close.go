package arbiter

import (
	"fmt"

	"github.com/openchan/openchan/state"
	"github.com/stellar/go/keypair"
)

// StartChallenge begins the dispute procedure on a channel. Either party may
// start it, from Open as well as Joined, and the channel may be force closed
// strictly after the close time it fixes.
func (a *Arbiter) StartChallenge(caller *keypair.FromAddress, id state.ChannelID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ch, err := a.authorize(caller, id)
	if err != nil {
		return err
	}
	if err := ch.StartChallenge(a.clock()); err != nil {
		return err
	}

	a.logf("channel %s challenged by %s, closable after %s", id, caller.Address(), ch.CloseTime())
	a.emit(ChallengedEvent{
		ID:        ch.ID(),
		CloseTime: ch.CloseTime(),
	})
	return nil
}

// Close settles a challenged channel once the challenge period has elapsed,
// disbursing the latest accepted balances to the two parties and removing
// the channel. Both disbursements must succeed; if the second fails the
// first is reversed, and the close fails whole and is retryable.
func (a *Arbiter) Close(caller *keypair.FromAddress, id state.ChannelID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ch, err := a.authorize(caller, id)
	if err != nil {
		return err
	}
	if err := ch.Closable(a.clock()); err != nil {
		return err
	}

	balanceA, balanceB := ch.BalanceA(), ch.BalanceB()
	if err := a.ledger.TransferOut(ch.AgentA(), balanceA); err != nil {
		return fmt.Errorf("disbursing %d to agent A: %v: %w", balanceA, err, ErrTransferFailed)
	}
	if err := a.ledger.TransferOut(ch.AgentB(), balanceB); err != nil {
		if rerr := a.ledger.TransferIn(ch.AgentA(), balanceA); rerr != nil {
			return fmt.Errorf("reversing %d disbursed to agent A after failed close (%v): %v: %w", balanceA, err, rerr, ErrTransferFailed)
		}
		return fmt.Errorf("disbursing %d to agent B: %v: %w", balanceB, err, ErrTransferFailed)
	}

	ch.Close()
	a.remove(ch)

	a.logf("channel %s closed, disbursed %d/%d", id, balanceA, balanceB)
	a.emit(ClosedEvent{ID: ch.ID()})
	return nil
}
