package state

import (
	"strings"

	"github.com/stellar/go/txnbuild"
	"github.com/stellar/go/xdr"
)

// Asset identifies the value unit escrowed in a channel, in the form
// "CODE:ISSUER", or the native asset of the network.
type Asset string

const NativeAsset = Asset("native")

// IsNative returns true if the asset is the native asset of the network.
func (a Asset) IsNative() bool {
	return a.Asset().IsNative()
}

// Code returns the asset code.
func (a Asset) Code() string {
	return a.Asset().GetCode()
}

// Issuer returns the issuer of the asset.
func (a Asset) Issuer() string {
	return a.Asset().GetIssuer()
}

// Asset returns an asset from the stellar/go/txnbuild package with the same
// asset code and issuer, or a native asset if a native asset.
func (a Asset) Asset() txnbuild.Asset {
	parts := strings.SplitN(string(a), ":", 2)
	if len(parts) == 1 {
		return txnbuild.NativeAsset{}
	}
	return txnbuild.CreditAsset{
		Code:   parts[0],
		Issuer: parts[1],
	}
}

// StringCanonical returns a string friendly representation of the asset in
// canonical form. Registry pair indexes are keyed on this form so that
// "native" and "" index identically.
func (a Asset) StringCanonical() string {
	if a.IsNative() {
		return xdr.AssetTypeToString[xdr.AssetTypeAssetTypeNative]
	}
	return string(a)
}

// EqualCanonical returns true if this asset and the given asset are the same
// asset in canonical form.
func (a Asset) EqualCanonical(b Asset) bool {
	return a.StringCanonical() == b.StringCanonical()
}
