// Package arbiter contains the operation surface of the payment channel
// core: a registry of channels, the lifecycle transitions that move funds
// against an escrow ledger, and the notifications emitted as transitions
// succeed.
//
// Every operation is serialized behind a single mutex, so no operation ever
// observes or produces a partially applied transition. An operation either
// fully completes, mutating state and moving funds, or fully fails leaving
// prior state untouched; an escrow transfer already issued within a failing
// operation is reversed before the operation returns.
//
// Time is read from the configured clock. The challenge period is the only
// timeout mechanism; there are no background timers and no internal retries.
// Callers resubmit failed operations once the condition causing the failure
// is resolved.
package arbiter

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/openchan/openchan/state"
	"github.com/stellar/go/keypair"
)

// Ledger is the external escrow primitive holding deposited funds until
// settlement. Both calls are all-or-nothing: an error means no value moved.
type Ledger interface {
	// TransferIn moves the amount from the payer into escrow custody.
	TransferIn(payer *keypair.FromAddress, amount int64) error
	// TransferOut moves the amount out of escrow custody to the payee.
	TransferOut(payee *keypair.FromAddress, amount int64) error
}

type Config struct {
	NetworkPassphrase string

	Ledger Ledger

	// Clock supplies the current time for challenge timing. All parties are
	// assumed to share a monotonically non-decreasing clock. Defaults to
	// time.Now.
	Clock func() time.Time

	LogWriter io.Writer

	// Events receives a notification for every successful transition. The
	// send is synchronous with the operation, so the consumer must keep up.
	// A nil channel disables notifications.
	Events chan<- Event
}

// Arbiter owns the channel registry and arbitrates every lifecycle
// transition. A single Arbiter is the serialization point for all channels
// it holds.
type Arbiter struct {
	networkPassphrase string
	ledger            Ledger
	clock             func() time.Time
	logWriter         io.Writer
	events            chan<- Event

	mu       sync.Mutex
	channels map[state.ChannelID]*state.Channel
	pairs    map[pairKey]state.ChannelID
}

func NewArbiter(c Config) *Arbiter {
	a := &Arbiter{
		networkPassphrase: c.NetworkPassphrase,
		ledger:            c.Ledger,
		clock:             c.Clock,
		logWriter:         c.LogWriter,
		events:            c.Events,

		channels: map[state.ChannelID]*state.Channel{},
		pairs:    map[pairKey]state.ChannelID{},
	}
	if a.clock == nil {
		a.clock = time.Now
	}
	if a.logWriter == nil {
		a.logWriter = io.Discard
	}
	return a
}

func (a *Arbiter) emit(e Event) {
	if a.events == nil {
		return
	}
	a.events <- e
}

func (a *Arbiter) logf(format string, args ...interface{}) {
	fmt.Fprintf(a.logWriter, format+"\n", args...)
}
