package keeper_test

import (
	"encoding/hex"
	"fmt"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	keepertest "github.com/asamuj/nicks/testutil/keeper"
	"github.com/asamuj/nicks/testutil/sample"
	"github.com/asamuj/nicks/x/nicks/keeper"
	"github.com/asamuj/nicks/x/nicks/types"
)

type scenario struct {
	t        *testing.T
	ctx      sdk.Context
	k        keeper.Keeper
	ms       types.MsgServer
	currency *keepertest.InMemoryCurrency
}

func newScenario(t *testing.T) *scenario {
	currency := keepertest.NewInMemoryCurrency()
	k, ctx, _ := keepertest.NicksKeeperWithCurrency(t, types.DefaultParams(), currency)
	return &scenario{t: t, ctx: ctx, k: k, ms: keeper.NewMsgServerImpl(k), currency: currency}
}

func (s *scenario) account(free int64) sdk.AccAddress {
	addr := sample.AccAddressBytes()
	s.currency.Fund(addr, sdk.NewInt64Coin(types.DefaultDenom, free))
	return addr
}

func (s *scenario) setName(addr sdk.AccAddress, name string) (sdk.Events, error) {
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())
	_, err := s.ms.SetName(s.ctx, types.NewMsgSetName(addr.String(), []byte(name)))
	return s.ctx.EventManager().Events(), err
}

func (s *scenario) getName(addr sdk.AccAddress) (sdk.Events, error) {
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())
	_, err := s.ms.GetName(s.ctx, types.NewMsgGetName(addr.String()))
	return s.ctx.EventManager().Events(), err
}

func (s *scenario) requireBalances(addr sdk.AccAddress, free, reserved int64) {
	s.t.Helper()
	require.Equal(s.t, sdk.NewInt64Coin(types.DefaultDenom, free).String(), s.currency.FreeBalance(addr, types.DefaultDenom).String())
	require.Equal(s.t, sdk.NewInt64Coin(types.DefaultDenom, reserved).String(), s.currency.ReservedBalance(s.ctx, addr, types.DefaultDenom).String())
}

func (s *scenario) requireEntry(addr sdk.AccAddress, name string, deposit int64) {
	s.t.Helper()
	entry, found := s.k.GetName(s.ctx, addr)
	require.True(s.t, found)
	require.Equal(s.t, []byte(name), []byte(entry.Name))
	require.Equal(s.t, sdk.NewInt64Coin(types.DefaultDenom, deposit).String(), entry.Deposit.String())
}

// MaxLength 16, ReservationFee 100, free balance 1000 unless stated.
func TestScenarios(t *testing.T) {
	s := newScenario(t)
	a := s.account(1000)
	b := s.account(50)
	c := s.account(1000)

	// 1. first naming reserves the fee
	events, err := s.setName(a, "alice")
	require.NoError(t, err)
	require.Equal(t, []string{types.EventTypeNameSet}, eventTypes(events))
	require.Equal(t, a.String(), attribute(events[0], types.AttributeKeyWho))
	s.requireEntry(a, "alice", 100)
	s.requireBalances(a, 900, 100)

	// 2. rename keeps the reservation
	events, err = s.setName(a, "alicia")
	require.NoError(t, err)
	require.Equal(t, []string{types.EventTypeNameChanged}, eventTypes(events))
	s.requireEntry(a, "alicia", 100)
	s.requireBalances(a, 900, 100)

	// 3. not enough free balance
	events, err = s.setName(b, "bob")
	require.ErrorIs(t, err, sdkerrors.ErrInsufficientFunds)
	require.Empty(t, events)
	_, found := s.k.GetName(s.ctx, b)
	require.False(t, found)
	s.requireBalances(b, 50, 0)

	// 4. 17 bytes is one too many
	events, err = s.setName(a, "seventeen-bytes!!")
	require.ErrorIs(t, err, types.ErrTooLong)
	require.Empty(t, events)
	s.requireEntry(a, "alicia", 100)
	s.requireBalances(a, 900, 100)

	// 5. querying an unnamed account
	events, err = s.getName(c)
	require.ErrorIs(t, err, types.ErrUnnamed)
	require.Empty(t, events)

	// 6. querying a named account
	events, err = s.getName(a)
	require.NoError(t, err)
	require.Equal(t, []string{types.EventTypeNameQueried}, eventTypes(events))
	require.Equal(t, a.String(), attribute(events[0], types.AttributeKeyWho))
	require.Equal(t, hex.EncodeToString([]byte("alicia")), attribute(events[0], types.AttributeKeyName))
	s.requireEntry(a, "alicia", 100)
	s.requireBalances(a, 900, 100)
}

func TestManyRenamesKeepDeposit(t *testing.T) {
	s := newScenario(t)
	a := s.account(1000)

	_, err := s.setName(a, "first")
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		name := fmt.Sprintf("name-%d", i)
		events, err := s.setName(a, name)
		require.NoError(t, err)
		require.Equal(t, []string{types.EventTypeNameChanged}, eventTypes(events))
		s.requireEntry(a, name, 100)
		s.requireBalances(a, 900, 100)
	}
}

func TestSetThenGetRoundTrip(t *testing.T) {
	s := newScenario(t)

	for _, tc := range []struct {
		name      string
		preNamed  bool
		wantFirst string
	}{
		{name: "fresh account", wantFirst: types.EventTypeNameSet},
		{name: "named account", preNamed: true, wantFirst: types.EventTypeNameChanged},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := s.account(1000)
			if tc.preNamed {
				_, err := s.setName(a, "old")
				require.NoError(t, err)
			}

			s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())
			_, err := s.ms.SetName(s.ctx, types.NewMsgSetName(a.String(), []byte("carol")))
			require.NoError(t, err)
			_, err = s.ms.GetName(s.ctx, types.NewMsgGetName(a.String()))
			require.NoError(t, err)

			events := s.ctx.EventManager().Events()
			require.Equal(t, []string{tc.wantFirst, types.EventTypeNameQueried}, eventTypes(events))
			require.Equal(t, hex.EncodeToString([]byte("carol")), attribute(events[1], types.AttributeKeyName))
		})
	}
}

func TestZeroReservationFee(t *testing.T) {
	currency := keepertest.NewInMemoryCurrency()
	params := types.NewParams(types.DefaultMaxLength, sdk.NewInt64Coin(types.DefaultDenom, 0))
	k, ctx, _ := keepertest.NicksKeeperWithCurrency(t, params, currency)
	ms := keeper.NewMsgServerImpl(k)

	addr := sample.AccAddressBytes()
	res, err := ms.SetName(ctx, types.NewMsgSetName(addr.String(), []byte("free")))
	require.NoError(t, err)
	require.True(t, res.Created)
	require.True(t, res.Deposit.IsZero())
}
