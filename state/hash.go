package state

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/network"
)

// channelIDTag domain-separates channel ID derivation from any other use of
// the same hash over the same inputs.
const channelIDTag = "openchan.channel.v1"

// ChannelID is the unique identifier of a channel. It is derived from the two
// participants, the asset, and the time the channel was opened, and is unique
// per channel instance. The asset is part of the derivation because the same
// pair may hold concurrent channels over different assets, and those may be
// opened at the same instant.
type ChannelID [32]byte

// NewChannelID derives the identifier of a channel opened between agentA and
// agentB over the asset at the given time on the network identified by the
// passphrase.
func NewChannelID(networkPassphrase string, agentA, agentB *keypair.FromAddress, asset Asset, openedAt time.Time) ChannelID {
	networkID := network.ID(networkPassphrase)
	h := sha256.New()
	h.Write(networkID[:])
	h.Write([]byte(channelIDTag))
	h.Write([]byte(agentA.Address()))
	h.Write([]byte(agentB.Address()))
	h.Write([]byte(asset.StringCanonical()))
	h.Write(int64Bytes(openedAt.UnixNano()))
	id := ChannelID{}
	copy(id[:], h.Sum(nil))
	return id
}

func (id ChannelID) String() string {
	return hex.EncodeToString(id[:])
}

func (id ChannelID) MarshalText() ([]byte, error) {
	text := [len(id) * 2]byte{}
	n := hex.Encode(text[:], id[:])
	if n != len(text) {
		return nil, hex.ErrLength
	}
	return text[:], nil
}

func (id *ChannelID) UnmarshalText(text []byte) error {
	if len(text) != len(id)*2 {
		return fmt.Errorf("unmarshaling channel id: input length %d expected %d", len(text), len(id)*2)
	}
	n, err := hex.Decode(id[:], text)
	if err != nil {
		return fmt.Errorf("unmarshaling channel id: %w", err)
	}
	if n != len(id) {
		return fmt.Errorf("unmarshaling channel id: decoded length %d expected %d", n, len(id))
	}
	return nil
}

func int64Bytes(v int64) []byte {
	b := [8]byte{}
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return b[:]
}
