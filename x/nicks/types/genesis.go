package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisName is one exported registry entry.
type GenesisName struct {
	Address string   `json:"address"`
	Name    []byte   `json:"name"`
	Deposit sdk.Coin `json:"deposit"`
}

// GenesisReservation is one booking of the escrow ledger.
type GenesisReservation struct {
	Address string   `json:"address"`
	Amount  sdk.Coin `json:"amount"`
}

// GenesisState is the registry's genesis state. Every non-zero name deposit is
// matched by exactly one reservation of the same account and amount.
type GenesisState struct {
	Params       Params               `json:"params"`
	Names        []GenesisName        `json:"names"`
	Reservations []GenesisReservation `json:"reservations"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Names:        []GenesisName{},
		Reservations: []GenesisReservation{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	deposits := make(map[string]sdk.Coin)
	seenAddresses := make(map[string]bool)
	for _, elem := range gs.Names {
		addr, err := sdk.AccAddressFromBech32(elem.Address)
		if err != nil {
			return fmt.Errorf("invalid address %q: %w", elem.Address, err)
		}

		// Check for duplicate accounts
		if seenAddresses[addr.String()] {
			return fmt.Errorf("duplicate name entry for %s", elem.Address)
		}
		seenAddresses[addr.String()] = true

		entry := NewNameEntry(elem.Name, elem.Deposit)
		if err := entry.Validate(gs.Params.MaxLength); err != nil {
			return fmt.Errorf("invalid entry for %s: %w", elem.Address, err)
		}
		if !elem.Deposit.IsZero() {
			deposits[addr.String()] = elem.Deposit
		}
	}

	for _, elem := range gs.Reservations {
		addr, err := sdk.AccAddressFromBech32(elem.Address)
		if err != nil {
			return fmt.Errorf("invalid reservation address %q: %w", elem.Address, err)
		}
		if !elem.Amount.IsValid() || elem.Amount.IsZero() {
			return fmt.Errorf("invalid reservation amount %s for %s", elem.Amount, elem.Address)
		}
		deposit, ok := deposits[addr.String()]
		if !ok {
			return fmt.Errorf("reservation for %s backs no name deposit", elem.Address)
		}
		if !deposit.Equal(elem.Amount) {
			return fmt.Errorf("reservation %s for %s does not match deposit %s", elem.Amount, elem.Address, deposit)
		}
		delete(deposits, addr.String())
	}
	for addr, deposit := range deposits {
		return fmt.Errorf("deposit %s of %s is not reserved", deposit, addr)
	}

	return nil
}
