package arbiter

import (
	"github.com/openchan/openchan/state"
	"github.com/stellar/go/keypair"
)

// UpdateState submits a balance update signed by both participants as the
// channel's new canonical state. Either party may submit it, including while
// a challenge is running, which is how an honest party replaces a stale
// state their counterparty put forward.
func (a *Arbiter) UpdateState(caller *keypair.FromAddress, id state.ChannelID, d state.UpdateDetails, sigA, sigB []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ch, err := a.authorize(caller, id)
	if err != nil {
		return err
	}
	if err := ch.ApplyUpdate(d, sigA, sigB); err != nil {
		return err
	}

	a.logf("channel %s updated to nonce %d balances %d/%d", id, d.Nonce, d.BalanceA, d.BalanceB)
	a.emit(UpdatedEvent{
		ID:       ch.ID(),
		Nonce:    ch.Nonce(),
		BalanceA: ch.BalanceA(),
		BalanceB: ch.BalanceB(),
	})
	return nil
}
