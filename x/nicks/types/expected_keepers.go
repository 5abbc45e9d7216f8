package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected interface for the Bank module.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// ReservableCurrency is the balance capability the registry takes deposits through.
type ReservableCurrency interface {
	// Reserve moves amount from the account's free balance to its reserved balance.
	// It fails with sdkerrors.ErrInsufficientFunds when the free balance is too low.
	Reserve(ctx context.Context, addr sdk.AccAddress, amount sdk.Coin) error
	// ReservedBalance returns what is currently reserved for addr in denom.
	ReservedBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// ReservationLedger is the bookkeeping side of a ReservableCurrency, carried
// through genesis. Setting a booking moves no coins.
type ReservationLedger interface {
	IterateReserved(ctx context.Context, process func(addr sdk.AccAddress, amount sdk.Coin) (stop bool)) error
	SetReserved(ctx context.Context, addr sdk.AccAddress, amount sdk.Coin) error
}
