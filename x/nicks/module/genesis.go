package nicks

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/asamuj/nicks/x/nicks/keeper"
	"github.com/asamuj/nicks/x/nicks/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
// Reservations are booked on the ledger; funding the escrow is up to the caller.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, ledger types.ReservationLedger, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(err)
	}

	// Set all the name entries
	for _, elem := range genState.Names {
		addr, err := sdk.AccAddressFromBech32(elem.Address)
		if err != nil {
			panic(err)
		}
		name, err := types.NewBoundedName(elem.Name, k.GetParams().MaxLength)
		if err != nil {
			panic(err)
		}
		k.SetName(ctx, addr, types.NewNameEntry(name, elem.Deposit))
	}

	for _, elem := range genState.Reservations {
		addr := sdk.MustAccAddressFromBech32(elem.Address)
		if err := ledger.SetReserved(ctx, addr, elem.Amount); err != nil {
			panic(err)
		}
	}

	if err := k.ValidateDeployment(ctx); err != nil {
		panic(err)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper, ledger types.ReservationLedger) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams()

	names := make([]types.GenesisName, 0)
	k.IterateNames(ctx, func(addr sdk.AccAddress, entry types.NameEntry) (stop bool) {
		names = append(names, types.GenesisName{
			Address: addr.String(),
			Name:    entry.Name,
			Deposit: entry.Deposit,
		})
		return false
	})
	genesis.Names = names

	reservations := make([]types.GenesisReservation, 0)
	err := ledger.IterateReserved(ctx, func(addr sdk.AccAddress, amount sdk.Coin) (stop bool) {
		reservations = append(reservations, types.GenesisReservation{
			Address: addr.String(),
			Amount:  amount,
		})
		return false
	})
	if err != nil {
		panic(err)
	}
	genesis.Reservations = reservations

	return genesis
}
