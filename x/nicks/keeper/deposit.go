package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/asamuj/nicks/x/nicks/types"
)

// depositFor decides the deposit backing a naming action. An existing entry
// keeps its stored deposit and nothing is reserved; otherwise ReservationFee is
// reserved from addr. The returned bool reports whether a reservation was taken.
func (k Keeper) depositFor(ctx context.Context, addr sdk.AccAddress, existing *types.NameEntry) (sdk.Coin, bool, error) {
	if existing != nil {
		return existing.Deposit, false, nil
	}

	deposit := k.params.ReservationFee
	if err := k.currency.Reserve(ctx, addr, deposit); err != nil {
		return sdk.Coin{}, false, err
	}
	return deposit, true, nil
}
