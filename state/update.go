package state

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/network"
)

// updateTag domain-separates update digests from channel ID derivation and
// any other signing use on the same network.
const updateTag = "openchan.update.v1"

// UpdateDetails contains the details of a balance update that the
// participants agree on and sign off-channel.
type UpdateDetails struct {
	Nonce    int64
	BalanceA int64
	BalanceB int64
}

func (d UpdateDetails) Equal(d2 UpdateDetails) bool {
	type UD UpdateDetails
	return cmp.Equal(UD(d), UD(d2))
}

// UpdatePayload returns the canonical byte encoding of a balance update: the
// update tag, the channel ID, then the nonce and both balances as big-endian
// 64-bit values. This is the exact byte sequence both participants commit to;
// signatures are made over the wrapped hash of it, never over the payload
// directly.
func UpdatePayload(id ChannelID, d UpdateDetails) []byte {
	b := make([]byte, 0, len(updateTag)+len(id)+3*8)
	b = append(b, updateTag...)
	b = append(b, id[:]...)
	b = append(b, int64Bytes(d.Nonce)...)
	b = append(b, int64Bytes(d.BalanceA)...)
	b = append(b, int64Bytes(d.BalanceB)...)
	return b
}

// UpdateHash is the digest of a balance update that participants sign.
type UpdateHash [32]byte

func (h UpdateHash) String() string {
	return hex.EncodeToString(h[:])
}

// HashUpdate returns the digest of a balance update, wrapping the canonical
// payload with the network ID derived from the network passphrase. Off-chain
// signers must produce signatures over this same wrapped digest, so that
// verification reproduces byte-for-byte what the wallet signed. A signature
// over the raw payload, or over a digest wrapped for another network, does
// not verify.
func HashUpdate(networkPassphrase string, id ChannelID, d UpdateDetails) UpdateHash {
	networkID := network.ID(networkPassphrase)
	hasher := sha256.New()
	hasher.Write(networkID[:])
	hasher.Write(UpdatePayload(id, d))
	h := UpdateHash{}
	copy(h[:], hasher.Sum(nil))
	return h
}

// SignUpdate signs a balance update with the given key, over the same wrapped
// digest that verification uses. It is the signing half of the convention
// that HashUpdate pins down, for use by the off-channel side of a channel.
func SignUpdate(networkPassphrase string, id ChannelID, d UpdateDetails, signer *keypair.Full) ([]byte, error) {
	h := HashUpdate(networkPassphrase, id, d)
	sig, err := signer.Sign(h[:])
	if err != nil {
		return nil, fmt.Errorf("signing update %d for channel %s: %w", d.Nonce, id, err)
	}
	return sig, nil
}
