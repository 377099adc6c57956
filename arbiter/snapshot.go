package arbiter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/openchan/openchan/state"
)

// Snapshot is the full state of the arbiter's registry at a point in time.
// Restoring it with NewArbiterFromSnapshot rebuilds the registry and its
// pair index; the collaborators from the Config are not part of a snapshot.
type Snapshot struct {
	Channels []state.Snapshot
}

// Snapshot returns the registry state, with channels ordered by ID so that
// snapshots of the same state encode identically.
func (a *Arbiter) Snapshot() Snapshot {
	return Snapshot{Channels: a.Channels()}
}

// WriteSnapshot writes the registry state to w as gzip-compressed JSON.
func (a *Arbiter) WriteSnapshot(w io.Writer) error {
	gz := gzip.NewWriter(w)
	if err := json.NewEncoder(gz).Encode(a.Snapshot()); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("flushing snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot reads a snapshot previously written with WriteSnapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	defer gz.Close()
	s := Snapshot{}
	if err := json.NewDecoder(gz).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return s, nil
}

// NewArbiterFromSnapshot constructs an arbiter with the given config and
// restores the registry from the snapshot.
func NewArbiterFromSnapshot(c Config, s Snapshot) *Arbiter {
	a := NewArbiter(c)
	for _, cs := range s.Channels {
		ch := state.NewChannelFromSnapshot(c.NetworkPassphrase, cs)
		a.channels[ch.ID()] = ch
		a.pairs[newPairKey(ch.AgentA(), ch.AgentB(), ch.Asset())] = ch.ID()
	}
	return a
}
