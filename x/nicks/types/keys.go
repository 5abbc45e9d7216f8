package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "nicks"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	// NameOfKey is the prefix of the account -> (name, deposit) lookup table
	NameOfKey = collections.NewPrefix(0)

	// DeployedMaxLengthKey holds the largest MaxLength this store has been written under
	DeployedMaxLengthKey = collections.NewPrefix(1)

	// ReservedKey is the prefix of the per-account escrow ledger, keyed by (account, denom)
	ReservedKey = collections.NewPrefix(2)
)
