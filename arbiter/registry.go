package arbiter

import (
	"fmt"

	"github.com/openchan/openchan/state"
	"github.com/stellar/go/keypair"
)

// pairKey indexes the active channel between two parties over one asset. The
// addresses are ordered lexically so that the same key results regardless of
// which party opened the channel.
type pairKey struct {
	lo    string
	hi    string
	asset string
}

func newPairKey(a, b *keypair.FromAddress, asset state.Asset) pairKey {
	lo, hi := a.Address(), b.Address()
	if hi < lo {
		lo, hi = hi, lo
	}
	return pairKey{lo: lo, hi: hi, asset: asset.StringCanonical()}
}

// lookup returns the channel with the given ID. The arbiter's mutex must be
// held.
func (a *Arbiter) lookup(id state.ChannelID) (*state.Channel, error) {
	ch, ok := a.channels[id]
	if !ok {
		return nil, fmt.Errorf("channel %s: %w", id, ErrNotFound)
	}
	return ch, nil
}

// remove deletes the channel and its pair index entry. Only called from
// Close, after settlement. The arbiter's mutex must be held.
func (a *Arbiter) remove(ch *state.Channel) {
	delete(a.channels, ch.ID())
	delete(a.pairs, newPairKey(ch.AgentA(), ch.AgentB(), ch.Asset()))
}

// authorize returns the channel if the caller is one of its two parties. The
// arbiter's mutex must be held.
func (a *Arbiter) authorize(caller *keypair.FromAddress, id state.ChannelID) (*state.Channel, error) {
	ch, err := a.lookup(id)
	if err != nil {
		return nil, err
	}
	if !ch.IsParty(caller) {
		return nil, fmt.Errorf("caller of channel %s: %w", id, ErrUnauthorized)
	}
	return ch, nil
}
