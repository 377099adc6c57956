package state_test

import (
	"encoding/hex"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openchan/openchan/state"
)

// Pinned vectors for the canonical update encoding and its wrapped digest.
// Any change to these bytes silently breaks interoperability with off-chain
// signers, so they are asserted exactly.
func TestUpdatePayload_vector(t *testing.T) {
	id := state.ChannelID{0x01, 0x02, 0x03}
	d := state.UpdateDetails{Nonce: 1, BalanceA: 9, BalanceB: 4}

	payload := state.UpdatePayload(id, d)
	assert.Equal(
		t,
		"6f70656e6368616e2e7570646174652e7631"+ // tag "openchan.update.v1"
			"0102030000000000000000000000000000000000000000000000000000000000"+ // channel id
			"0000000000000001"+ // nonce
			"0000000000000009"+ // balance a
			"0000000000000004", // balance b
		hex.EncodeToString(payload),
	)
}

func TestHashUpdate_vector(t *testing.T) {
	id := state.ChannelID{0x01, 0x02, 0x03}

	h := state.HashUpdate(network.TestNetworkPassphrase, id, state.UpdateDetails{Nonce: 1, BalanceA: 9, BalanceB: 4})
	assert.Equal(t, "a0e59c06a304404f5cf3c69cdd56bc27a96cc3554843258d6090baf74b860eea", h.String())

	h = state.HashUpdate(network.TestNetworkPassphrase, id, state.UpdateDetails{Nonce: 2, BalanceA: 13, BalanceB: 0})
	assert.Equal(t, "4c432129cebb955ec68f254a2de45340238cd30db5cd6009743fad418c8c3ed5", h.String())
}

func TestHashUpdate_wrappingBindsNetwork(t *testing.T) {
	id := state.ChannelID{0x01, 0x02, 0x03}
	d := state.UpdateDetails{Nonce: 1, BalanceA: 9, BalanceB: 4}

	hTest := state.HashUpdate(network.TestNetworkPassphrase, id, d)
	hPub := state.HashUpdate(network.PublicNetworkPassphrase, id, d)
	assert.NotEqual(t, hTest, hPub)
}

func TestSignUpdate_verifiesOverWrappedDigest(t *testing.T) {
	signer := keypair.MustRandom()
	id := state.ChannelID{0x01, 0x02, 0x03}
	d := state.UpdateDetails{Nonce: 1, BalanceA: 9, BalanceB: 4}

	sig, err := state.SignUpdate(network.TestNetworkPassphrase, id, d, signer)
	require.NoError(t, err)

	h := state.HashUpdate(network.TestNetworkPassphrase, id, d)
	assert.NoError(t, signer.FromAddress().Verify(h[:], sig))

	// A signature over the raw payload instead of the wrapped digest must
	// not verify. This is the wrapping mismatch that breaks interoperability
	// without breaking anything else, so it is pinned here.
	rawSig, err := signer.Sign(state.UpdatePayload(id, d))
	require.NoError(t, err)
	assert.Error(t, signer.FromAddress().Verify(h[:], rawSig))

	// A signature wrapped for another network must not verify either.
	pubSig, err := state.SignUpdate(network.PublicNetworkPassphrase, id, d, signer)
	require.NoError(t, err)
	assert.Error(t, signer.FromAddress().Verify(h[:], pubSig))
}

func TestUpdateDetails_Equal(t *testing.T) {
	d := state.UpdateDetails{Nonce: 1, BalanceA: 9, BalanceB: 4}
	assert.True(t, d.Equal(state.UpdateDetails{Nonce: 1, BalanceA: 9, BalanceB: 4}))
	assert.False(t, d.Equal(state.UpdateDetails{Nonce: 2, BalanceA: 9, BalanceB: 4}))
	assert.False(t, d.Equal(state.UpdateDetails{}))
}

func TestUpdatePayload_fuzzDeterministic(t *testing.T) {
	f := fuzz.New()
	id := state.ChannelID{0x05, 0x06, 0x07}
	for i := 0; i < 100; i++ {
		d := state.UpdateDetails{}
		f.Fuzz(&d)
		assert.Equal(t, state.UpdatePayload(id, d), state.UpdatePayload(id, d))
		assert.Len(t, state.UpdatePayload(id, d), 18+32+3*8)
		assert.Equal(
			t,
			state.HashUpdate(network.TestNetworkPassphrase, id, d),
			state.HashUpdate(network.TestNetworkPassphrase, id, d),
		)
	}
}
