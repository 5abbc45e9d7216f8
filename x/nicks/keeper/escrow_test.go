package keeper_test

import (
	"context"
	"testing"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	keepertest "github.com/asamuj/nicks/testutil/keeper"
	"github.com/asamuj/nicks/testutil/sample"
	"github.com/asamuj/nicks/x/nicks/types"
)

func TestEscrowReserve_MovesCoinsAndBooks(t *testing.T) {
	escrow, ctx, bankKeeper := keepertest.EscrowCurrency(t)
	participant := sample.AccAddressBytes()
	deposit := sdk.NewInt64Coin(types.DefaultDenom, 100)

	bankKeeper.EXPECT().
		SendCoinsFromAccountToModule(ctx, participant, types.ModuleName, gomock.Any()).
		DoAndReturn(func(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
			require.Equal(t, deposit.Amount, amt.AmountOf(types.DefaultDenom))
			require.Len(t, amt, 1)
			return nil
		}).
		Times(2)

	require.NoError(t, escrow.Reserve(ctx, participant, deposit))
	require.Equal(t, "100nick", escrow.ReservedBalance(ctx, participant, types.DefaultDenom).String())

	require.NoError(t, escrow.Reserve(ctx, participant, deposit))
	require.Equal(t, "200nick", escrow.ReservedBalance(ctx, participant, types.DefaultDenom).String())

	require.Equal(t, "0other", escrow.ReservedBalance(ctx, participant, "other").String())
}

func TestEscrowReserve_InsufficientFundsBooksNothing(t *testing.T) {
	escrow, ctx, bankKeeper := keepertest.EscrowCurrency(t)
	participant := sample.AccAddressBytes()

	insufficient := errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "spendable balance 50nick is smaller than 100nick")
	bankKeeper.EXPECT().
		SendCoinsFromAccountToModule(ctx, participant, types.ModuleName, gomock.Any()).
		Return(insufficient).
		Times(1)

	err := escrow.Reserve(ctx, participant, sdk.NewInt64Coin(types.DefaultDenom, 100))
	require.ErrorIs(t, err, sdkerrors.ErrInsufficientFunds)
	require.True(t, escrow.ReservedBalance(ctx, participant, types.DefaultDenom).IsZero())
}

func TestEscrowReserve_ZeroIsNoop(t *testing.T) {
	escrow, ctx, _ := keepertest.EscrowCurrency(t)
	participant := sample.AccAddressBytes()

	// no bank expectation: a transfer would fail the test
	require.NoError(t, escrow.Reserve(ctx, participant, sdk.NewInt64Coin(types.DefaultDenom, 0)))
	require.True(t, escrow.ReservedBalance(ctx, participant, types.DefaultDenom).IsZero())
}

func TestEscrowReserve_AccountsAreSeparate(t *testing.T) {
	escrow, ctx, bankKeeper := keepertest.EscrowCurrency(t)
	alice := sample.AccAddressBytes()
	bob := sample.AccAddressBytes()

	bankKeeper.EXPECT().SendCoinsFromAccountToModule(ctx, gomock.Any(), types.ModuleName, gomock.Any()).Return(nil).Times(2)

	require.NoError(t, escrow.Reserve(ctx, alice, sdk.NewInt64Coin(types.DefaultDenom, 100)))
	require.NoError(t, escrow.Reserve(ctx, bob, sdk.NewInt64Coin(types.DefaultDenom, 7)))

	require.Equal(t, "100nick", escrow.ReservedBalance(ctx, alice, types.DefaultDenom).String())
	require.Equal(t, "7nick", escrow.ReservedBalance(ctx, bob, types.DefaultDenom).String())
}

func TestEscrowLedger_SetIterateAndTotal(t *testing.T) {
	escrow, ctx, _ := keepertest.EscrowCurrency(t)
	alice := sample.AccAddressBytes()
	bob := sample.AccAddressBytes()

	// no bank expectation: setting a booking moves no coins
	require.NoError(t, escrow.SetReserved(ctx, alice, sdk.NewInt64Coin(types.DefaultDenom, 100)))
	require.NoError(t, escrow.SetReserved(ctx, bob, sdk.NewInt64Coin(types.DefaultDenom, 40)))
	require.NoError(t, escrow.SetReserved(ctx, bob, sdk.NewInt64Coin("other", 3)))

	booked := map[string]string{}
	require.NoError(t, escrow.IterateReserved(ctx, func(addr sdk.AccAddress, amount sdk.Coin) bool {
		booked[addr.String()+"/"+amount.Denom] = amount.String()
		return false
	}))
	require.Equal(t, map[string]string{
		alice.String() + "/nick": "100nick",
		bob.String() + "/nick":   "40nick",
		bob.String() + "/other":  "3other",
	}, booked)

	var visited int
	require.NoError(t, escrow.IterateReserved(ctx, func(sdk.AccAddress, sdk.Coin) bool {
		visited++
		return true
	}))
	require.Equal(t, 1, visited)

	total, err := escrow.TotalReserved(ctx)
	require.NoError(t, err)
	require.Equal(t, "140nick,3other", total.String())
}

func TestEscrowValidateHoldings(t *testing.T) {
	escrow, ctx, bankKeeper := keepertest.EscrowCurrency(t)
	holder := authtypes.NewModuleAddress(types.ModuleName)
	require.NoError(t, escrow.SetReserved(ctx, sample.AccAddressBytes(), sdk.NewInt64Coin(types.DefaultDenom, 100)))

	bankKeeper.EXPECT().GetAllBalances(ctx, holder).Return(sdk.NewCoins(sdk.NewInt64Coin(types.DefaultDenom, 100)))
	require.NoError(t, escrow.ValidateHoldings(ctx))

	bankKeeper.EXPECT().GetAllBalances(ctx, holder).Return(sdk.NewCoins())
	require.ErrorIs(t, escrow.ValidateHoldings(ctx), types.ErrEscrowMismatch)

	bankKeeper.EXPECT().GetAllBalances(ctx, holder).Return(sdk.NewCoins(sdk.NewInt64Coin(types.DefaultDenom, 101)))
	require.ErrorIs(t, escrow.ValidateHoldings(ctx), types.ErrEscrowMismatch)
}
