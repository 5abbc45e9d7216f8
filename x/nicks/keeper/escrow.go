package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/asamuj/nicks/x/nicks/types"
)

var (
	_ types.ReservableCurrency = EscrowCurrency{}
	_ types.ReservationLedger  = EscrowCurrency{}
)

// EscrowCurrency implements reservations on top of the bank module: reserved
// coins are moved into the module account and booked per (account, denom), so
// the module account always holds the sum of all bookings.
type EscrowCurrency struct {
	bankKeeper types.BankKeeper
	holder     string
	logger     log.Logger

	Schema   collections.Schema
	Reserved collections.Map[collections.Pair[sdk.AccAddress, string], math.Int]
}

// NewEscrowCurrency builds an escrow that holds reservations in the holder module account.
func NewEscrowCurrency(
	storeService store.KVStoreService,
	logger log.Logger,
	bankKeeper types.BankKeeper,
	holder string,
) EscrowCurrency {
	sb := collections.NewSchemaBuilder(storeService)
	e := EscrowCurrency{
		bankKeeper: bankKeeper,
		holder:     holder,
		logger:     logger,
		Reserved: collections.NewMap(
			sb,
			types.ReservedKey,
			"reserved",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey),
			sdk.IntValue,
		),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	e.Schema = schema

	return e
}

func (e EscrowCurrency) Logger() log.Logger {
	return e.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName), "component", "escrow")
}

// Reserve moves amount from addr into the holder account and books it against addr.
func (e EscrowCurrency) Reserve(ctx context.Context, addr sdk.AccAddress, amount sdk.Coin) error {
	if amount.IsZero() {
		return nil
	}

	if err := e.bankKeeper.SendCoinsFromAccountToModule(ctx, addr, e.holder, sdk.NewCoins(amount)); err != nil {
		return err
	}

	key := collections.Join(addr, amount.Denom)
	current, err := e.Reserved.Get(ctx, key)
	switch {
	case errors.Is(err, collections.ErrNotFound):
		current = math.ZeroInt()
	case err != nil:
		return err
	}
	total := current.Add(amount.Amount)
	if err := e.Reserved.Set(ctx, key, total); err != nil {
		return err
	}

	e.Logger().Info("reserved deposit",
		"account", addr.String(),
		"amount", amount.String(),
		"total_reserved", sdk.NewCoin(amount.Denom, total).String(),
	)
	return nil
}

// ReservedBalance returns the amount booked for addr in denom.
func (e EscrowCurrency) ReservedBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	amount, err := e.Reserved.Get(ctx, collections.Join(addr, denom))
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			panic(err)
		}
		return sdk.NewCoin(denom, math.ZeroInt())
	}
	return sdk.NewCoin(denom, amount)
}

// SetReserved overwrites the booking for (addr, amount.Denom). Coins are not moved.
func (e EscrowCurrency) SetReserved(ctx context.Context, addr sdk.AccAddress, amount sdk.Coin) error {
	return e.Reserved.Set(ctx, collections.Join(addr, amount.Denom), amount.Amount)
}

// IterateReserved walks every booking in (account, denom) order.
func (e EscrowCurrency) IterateReserved(ctx context.Context, process func(addr sdk.AccAddress, amount sdk.Coin) (stop bool)) error {
	iter, err := e.Reserved.Iterate(ctx, nil)
	if err != nil {
		return err
	}
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		kv, err := iter.KeyValue()
		if err != nil {
			return err
		}
		if process(kv.Key.K1(), sdk.NewCoin(kv.Key.K2(), kv.Value)) {
			break
		}
	}
	return nil
}

// TotalReserved sums every booking.
func (e EscrowCurrency) TotalReserved(ctx context.Context) (sdk.Coins, error) {
	total := sdk.NewCoins()
	err := e.IterateReserved(ctx, func(_ sdk.AccAddress, amount sdk.Coin) bool {
		total = total.Add(amount)
		return false
	})
	return total, err
}

// ValidateHoldings fails unless the holder account holds exactly the booked total.
func (e EscrowCurrency) ValidateHoldings(ctx context.Context) error {
	total, err := e.TotalReserved(ctx)
	if err != nil {
		return err
	}
	held := e.bankKeeper.GetAllBalances(ctx, authtypes.NewModuleAddress(e.holder))
	if !held.Equal(total) {
		return errorsmod.Wrapf(types.ErrEscrowMismatch, "%s holds %s, reservations total %s", e.holder, held, total)
	}
	return nil
}
