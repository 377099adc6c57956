/*
Package state contains the representation of a two-party payment channel and
the validation rules for changing its state.

A channel locks deposits from two participants, agent A and agent B, against
an escrow ledger. The participants exchange balance updates off-channel. Each
update carries a strictly increasing nonce and is signed by both participants
over a digest binding the channel ID, the nonce, and both balances. The digest
is wrapped with the network ID derived from the network passphrase, so that
verification here reproduces byte-for-byte what the wallets signed.

The Channel type enforces the lifecycle:

	Open → Joined → Challenge → Closed

with an additional direct edge from Open to Challenge so that an opener whose
counterparty never joins can still recover their deposit. No transition ever
returns to an earlier state. The challenge period, fixed when the channel is
opened, bounds how long a party must wait before an unresolved challenge may
be finalized.

The Channel type validates and records state. It does not move funds, store
channels, or emit notifications; the arbiter package layers those concerns on
top.

None of the primitives in this package are threadsafe and synchronization
must be provided by the caller if the package is used in a concurrent
context.
*/
package state
