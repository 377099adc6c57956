package arbiter

import "errors"

var (
	// ErrInvalidParty occurs when a channel is opened against a missing
	// counterparty or against the opener themselves.
	ErrInvalidParty = errors.New("counterparty missing or equal to opener")

	// ErrInvalidChallenge occurs when a channel is opened with a challenge
	// period of zero or less.
	ErrInvalidChallenge = errors.New("challenge period must be greater than zero")

	// ErrInvalidDeposit occurs when a channel is opened or joined with a
	// negative deposit amount.
	ErrInvalidDeposit = errors.New("deposit amount must not be negative")

	// ErrDuplicateChannel occurs when a channel is opened while another
	// channel between the same two parties over the same asset, in either
	// role ordering, is still active.
	ErrDuplicateChannel = errors.New("active channel already exists for the pair and asset")

	// ErrUnauthorized occurs when an operation is invoked by an identity
	// that is not permitted to invoke it on the channel.
	ErrUnauthorized = errors.New("caller is not authorized for the channel")

	// ErrTransferFailed occurs when the escrow ledger rejects a transfer.
	// The enclosing operation is aborted and may be retried by the caller.
	ErrTransferFailed = errors.New("escrow transfer failed")

	// ErrNotFound occurs when no channel exists with the given ID.
	ErrNotFound = errors.New("channel not found")
)
