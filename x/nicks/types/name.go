package types

import (
	"encoding/hex"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BoundedName is a name whose length has been checked against a MaxLength.
// The bytes are opaque: no encoding, case or whitespace policy is applied.
type BoundedName []byte

// NewBoundedName copies raw into a BoundedName, failing with ErrTooLong when it
// exceeds maxLength bytes. Empty names are accepted.
func NewBoundedName(raw []byte, maxLength uint32) (BoundedName, error) {
	if uint64(len(raw)) > uint64(maxLength) {
		return nil, ErrTooLong.Wrapf("name is %d bytes, max is %d", len(raw), maxLength)
	}
	name := make(BoundedName, len(raw))
	copy(name, raw)
	return name, nil
}

// Hex returns the hex encoding used in event attributes.
func (n BoundedName) Hex() string {
	return hex.EncodeToString(n)
}

// NameEntry is the value stored per named account.
type NameEntry struct {
	Name BoundedName `json:"name"`
	// Deposit is set when the account is first named and never changes afterwards.
	Deposit sdk.Coin `json:"deposit"`
}

// NewNameEntry creates a NameEntry
func NewNameEntry(name BoundedName, deposit sdk.Coin) NameEntry {
	return NameEntry{
		Name:    name,
		Deposit: deposit,
	}
}

// Validate checks the entry against a length bound and that the deposit is a valid coin.
func (e NameEntry) Validate(maxLength uint32) error {
	if uint64(len(e.Name)) > uint64(maxLength) {
		return ErrTooLong.Wrapf("stored name is %d bytes, max is %d", len(e.Name), maxLength)
	}
	if e.Deposit.Amount.IsNil() {
		return ErrInvalidEntry.Wrap("deposit amount is nil")
	}
	if err := e.Deposit.Validate(); err != nil {
		return ErrInvalidEntry.Wrapf("invalid deposit: %s", err)
	}
	return nil
}
