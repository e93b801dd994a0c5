package domain

import (
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"
)

// Identity is the 32-byte public identity of an account taking part in the
// marketplace (sellers, bidders, buyers, the platform owner).
type Identity [32]byte

// ParseIdentity decodes a base58-encoded identity string.
func ParseIdentity(s string) (Identity, error) {
	buf, err := base58.Decode(s)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid identity: %w", err)
	}
	if len(buf) != len(Identity{}) {
		return Identity{}, fmt.Errorf(
			"invalid identity: must be %d bytes", len(Identity{}),
		)
	}
	var id Identity
	copy(id[:], buf)
	return id, nil
}

func (id Identity) String() string {
	return base58.Encode(id[:])
}

// IsZero returns whether the identity is unset.
func (id Identity) IsZero() bool {
	return id == Identity{}
}

func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *Identity) UnmarshalText(buf []byte) error {
	parsed, err := ParseIdentity(string(buf))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// AssetID identifies an asset class, either the unique asset held in escrow
// by a listing or the fungible unit named as payment asset.
type AssetID [32]byte

// ParseAssetID decodes a base58-encoded asset id string.
func ParseAssetID(s string) (AssetID, error) {
	buf, err := base58.Decode(s)
	if err != nil {
		return AssetID{}, fmt.Errorf("invalid asset id: %w", err)
	}
	if len(buf) != len(AssetID{}) {
		return AssetID{}, fmt.Errorf(
			"invalid asset id: must be %d bytes", len(AssetID{}),
		)
	}
	var asset AssetID
	copy(asset[:], buf)
	return asset, nil
}

func (a AssetID) String() string {
	return base58.Encode(a[:])
}

func (a AssetID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *AssetID) UnmarshalText(buf []byte) error {
	parsed, err := ParseAssetID(string(buf))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// DeriveEscrow returns the deterministic custody identity holding the asset
// of the listing identified by (seller, listingID). It is derivable by
// anybody from public identifiers and has no secret behind it, the ledger
// releases its holdings only to callers presenting the matching escrow
// authority.
func DeriveEscrow(seller Identity, listingID string) Identity {
	h := sha256.New()
	h.Write([]byte("galleria/escrow"))
	h.Write(seller[:])
	h.Write([]byte(listingID))
	var id Identity
	copy(id[:], h.Sum(nil))
	return id
}
