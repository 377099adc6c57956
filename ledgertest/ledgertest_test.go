package ledgertest_test

import (
	"testing"

	"github.com/stellar/go/keypair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openchan/openchan/ledgertest"
)

func TestLedger_transfers(t *testing.T) {
	l := ledgertest.NewLedger()
	account := keypair.MustRandom().FromAddress()
	l.Fund(account, 10)

	require.NoError(t, l.TransferIn(account, 7))
	assert.Equal(t, int64(3), l.Balance(account))
	assert.Equal(t, int64(7), l.Escrowed())

	require.NoError(t, l.TransferOut(account, 5))
	assert.Equal(t, int64(8), l.Balance(account))
	assert.Equal(t, int64(2), l.Escrowed())
}

func TestLedger_allOrNothing(t *testing.T) {
	l := ledgertest.NewLedger()
	account := keypair.MustRandom().FromAddress()
	l.Fund(account, 10)

	// Insufficient funds: nothing moves.
	assert.Error(t, l.TransferIn(account, 11))
	assert.Equal(t, int64(10), l.Balance(account))
	assert.Equal(t, int64(0), l.Escrowed())

	// Escrow cannot disburse more than it holds.
	assert.Error(t, l.TransferOut(account, 1))
	assert.Equal(t, int64(10), l.Balance(account))
}

func TestLedger_failureInjection(t *testing.T) {
	l := ledgertest.NewLedger()
	account := keypair.MustRandom().FromAddress()
	l.Fund(account, 10)

	l.FailTransferIn(account, assert.AnError)
	assert.ErrorIs(t, l.TransferIn(account, 1), assert.AnError)
	l.FailTransferIn(account, nil)
	assert.NoError(t, l.TransferIn(account, 1))

	l.FailTransferOut(account, assert.AnError)
	assert.ErrorIs(t, l.TransferOut(account, 1), assert.AnError)
	l.FailTransferOut(account, nil)
	assert.NoError(t, l.TransferOut(account, 1))
}
