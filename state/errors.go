package state

import "errors"

var (
	// ErrInvalidStatus occurs when the channel's current status does not
	// permit the requested transition.
	ErrInvalidStatus = errors.New("channel status does not permit the operation")

	// ErrAssetMismatch occurs when an operation names an asset other than the
	// asset the channel was opened with.
	ErrAssetMismatch = errors.New("asset does not match the channel asset")

	// ErrBalanceMismatch occurs when an update's balances do not sum to the
	// deposits escrowed in the channel.
	ErrBalanceMismatch = errors.New("balances do not sum to the escrowed deposits")

	// ErrNonceTooLow occurs when an update's nonce is not strictly greater
	// than the last accepted nonce, indicating a stale or replayed update.
	ErrNonceTooLow = errors.New("nonce is not greater than the last accepted nonce")

	// ErrInvalidSignature occurs when a required signature does not verify
	// against the update digest for the participant it is claimed from.
	ErrInvalidSignature = errors.New("signature invalid for the update digest")

	// ErrChallengePeriodNotElapsed occurs when a close is attempted at or
	// before the close time set when the challenge started.
	ErrChallengePeriodNotElapsed = errors.New("challenge period has not elapsed")
)
