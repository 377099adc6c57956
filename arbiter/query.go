package arbiter

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/openchan/openchan/state"
)

// Channel returns a snapshot of the channel with the given ID. Closed
// channels are removed, so querying one returns ErrNotFound.
func (a *Arbiter) Channel(id state.ChannelID) (state.Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ch, ok := a.channels[id]
	if !ok {
		return state.Snapshot{}, fmt.Errorf("channel %s: %w", id, ErrNotFound)
	}
	return ch.Snapshot(), nil
}

// Channels returns snapshots of all active channels, ordered by ID.
func (a *Arbiter) Channels() []state.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	snapshots := make([]state.Snapshot, 0, len(a.channels))
	for _, ch := range a.channels {
		snapshots = append(snapshots, ch.Snapshot())
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return bytes.Compare(snapshots[i].ID[:], snapshots[j].ID[:]) < 0
	})
	return snapshots
}
