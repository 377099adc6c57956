package state

import (
	"fmt"

	"github.com/stellar/go/keypair"
	"golang.org/x/sync/errgroup"
)

type signatureVerificationInput struct {
	Hash      UpdateHash
	Signature []byte
	Signer    *keypair.FromAddress
}

func verifySignatures(inputs []signatureVerificationInput) error {
	g := errgroup.Group{}
	for _, i := range inputs {
		i := i
		g.Go(func() error {
			if err := i.Signer.Verify(i.Hash[:], i.Signature); err != nil {
				return fmt.Errorf("verifying signature of %s: %w", i.Signer.Address(), ErrInvalidSignature)
			}
			return nil
		})
	}
	return g.Wait()
}
