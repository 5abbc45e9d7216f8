package keeper

// In-memory balances for tests that care about free/reserved amounts but not the bank module.
import (
	"context"
	"sync"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/asamuj/nicks/x/nicks/types"
)

var _ types.ReservableCurrency = (*InMemoryCurrency)(nil)

// InMemoryCurrency is an in-memory implementation of ReservableCurrency.
type InMemoryCurrency struct {
	free     map[string]sdk.Coins
	reserved map[string]sdk.Coins
	mu       sync.RWMutex
}

// NewInMemoryCurrency creates a new instance of InMemoryCurrency.
func NewInMemoryCurrency() *InMemoryCurrency {
	return &InMemoryCurrency{
		free:     make(map[string]sdk.Coins),
		reserved: make(map[string]sdk.Coins),
	}
}

// Fund adds coins to the free balance of addr.
func (c *InMemoryCurrency) Fund(addr sdk.AccAddress, coins ...sdk.Coin) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.free[addr.String()] = c.free[addr.String()].Add(coins...)
}

// FreeBalance returns the free balance of addr in denom.
func (c *InMemoryCurrency) FreeBalance(addr sdk.AccAddress, denom string) sdk.Coin {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sdk.NewCoin(denom, c.free[addr.String()].AmountOf(denom))
}

func (c *InMemoryCurrency) Reserve(ctx context.Context, addr sdk.AccAddress, amount sdk.Coin) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := addr.String()
	spendable := c.free[key]
	remaining, hasNeg := spendable.SafeSub(amount)
	if hasNeg {
		return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "spendable balance %s is smaller than %s", spendable, amount)
	}
	c.free[key] = remaining
	c.reserved[key] = c.reserved[key].Add(amount)
	return nil
}

func (c *InMemoryCurrency) ReservedBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sdk.NewCoin(denom, c.reserved[addr.String()].AmountOf(denom))
}
