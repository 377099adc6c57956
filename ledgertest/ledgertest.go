// Package ledgertest provides an in-memory escrow ledger implementing the
// arbiter.Ledger interface, for use in tests and example wiring. Transfers
// are all-or-nothing and failures can be injected per participant.
package ledgertest

import (
	"fmt"
	"sync"

	"github.com/stellar/go/keypair"

	"github.com/openchan/openchan/arbiter"
)

var _ arbiter.Ledger = (*Ledger)(nil)

type Ledger struct {
	mu sync.Mutex

	balances map[string]int64
	escrowed int64

	transferInErrs  map[string]error
	transferOutErrs map[string]error
}

func NewLedger() *Ledger {
	return &Ledger{
		balances:        map[string]int64{},
		transferInErrs:  map[string]error{},
		transferOutErrs: map[string]error{},
	}
}

// Fund credits a participant's balance outside of escrow.
func (l *Ledger) Fund(account *keypair.FromAddress, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[account.Address()] += amount
}

// Balance returns a participant's balance outside of escrow.
func (l *Ledger) Balance(account *keypair.FromAddress) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[account.Address()]
}

// Escrowed returns the total value held in escrow custody.
func (l *Ledger) Escrowed() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.escrowed
}

// FailTransferIn makes TransferIn calls by the given participant fail with
// err. A nil err clears the injection.
func (l *Ledger) FailTransferIn(account *keypair.FromAddress, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err == nil {
		delete(l.transferInErrs, account.Address())
		return
	}
	l.transferInErrs[account.Address()] = err
}

// FailTransferOut makes TransferOut calls to the given participant fail with
// err. A nil err clears the injection.
func (l *Ledger) FailTransferOut(account *keypair.FromAddress, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err == nil {
		delete(l.transferOutErrs, account.Address())
		return
	}
	l.transferOutErrs[account.Address()] = err
}

func (l *Ledger) TransferIn(payer *keypair.FromAddress, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err, ok := l.transferInErrs[payer.Address()]; ok {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("transferring in negative amount %d", amount)
	}
	if l.balances[payer.Address()] < amount {
		return fmt.Errorf("account %s holds %d, cannot escrow %d", payer.Address(), l.balances[payer.Address()], amount)
	}
	l.balances[payer.Address()] -= amount
	l.escrowed += amount
	return nil
}

func (l *Ledger) TransferOut(payee *keypair.FromAddress, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err, ok := l.transferOutErrs[payee.Address()]; ok {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("transferring out negative amount %d", amount)
	}
	if l.escrowed < amount {
		return fmt.Errorf("escrow holds %d, cannot disburse %d", l.escrowed, amount)
	}
	l.escrowed -= amount
	l.balances[payee.Address()] += amount
	return nil
}
