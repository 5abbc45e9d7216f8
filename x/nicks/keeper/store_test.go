package keeper_test

import (
	"testing"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/asamuj/nicks/testutil/keeper"
	"github.com/asamuj/nicks/testutil/sample"
	"github.com/asamuj/nicks/x/nicks/keeper"
	"github.com/asamuj/nicks/x/nicks/types"
)

func (s *KeeperTestSuite) TestGetName_Absent() {
	_, found := s.k.GetName(s.ctx, sample.AccAddressBytes())
	s.Require().False(found)
}

func (s *KeeperTestSuite) TestSetName_Overwrites() {
	addr := sample.AccAddressBytes()
	deposit := sdk.NewInt64Coin(types.DefaultDenom, 100)

	s.k.SetName(s.ctx, addr, types.NewNameEntry([]byte("alice"), deposit))
	s.k.SetName(s.ctx, addr, types.NewNameEntry([]byte("alicia"), deposit))

	entry, found := s.k.GetName(s.ctx, addr)
	s.Require().True(found)
	s.Require().Equal([]byte("alicia"), []byte(entry.Name))
	s.Require().Equal(deposit.String(), entry.Deposit.String())
}

func (s *KeeperTestSuite) TestIterateNames() {
	want := map[string]string{}
	for i := 0; i < 3; i++ {
		addr := sample.AccAddressBytes()
		name := sample.Name(i + 1)
		s.k.SetName(s.ctx, addr, types.NewNameEntry(name, types.DefaultReservationFee))
		want[addr.String()] = string(name)
	}

	got := map[string]string{}
	s.k.IterateNames(s.ctx, func(addr sdk.AccAddress, entry types.NameEntry) bool {
		got[addr.String()] = string(entry.Name)
		return false
	})
	s.Require().Equal(want, got)
}

func (s *KeeperTestSuite) TestValidateDeployment_RecordsBound() {
	s.Require().NoError(s.k.ValidateDeployment(s.ctx))

	deployed, err := s.k.DeployedMaxLength.Get(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(types.DefaultMaxLength), deployed)

	// idempotent
	s.Require().NoError(s.k.ValidateDeployment(s.ctx))
}

func TestValidateDeployment_RejectsReduction(t *testing.T) {
	currency := testkeeper.NewInMemoryCurrency()
	wide := types.NewParams(32, types.DefaultReservationFee)
	k, ctx, storeService := testkeeper.NicksKeeperWithCurrency(t, wide, currency)
	require.NoError(t, k.ValidateDeployment(ctx))

	addr := sample.AccAddressBytes()
	k.SetName(ctx, addr, types.NewNameEntry(sample.Name(20), types.DefaultReservationFee))

	narrow := keeper.NewKeeper(storeService, log.NewNopLogger(), types.DefaultParams(), currency)
	err := narrow.ValidateDeployment(ctx)
	require.ErrorIs(t, err, types.ErrMaxLengthReduced)

	// The legacy entry would not decode under the narrower bound, which is what the check prevents.
	_, err = narrow.Names.Get(ctx, addr)
	require.Error(t, err)
	require.Contains(t, err.Error(), types.ErrTooLong.Error())

	wider := keeper.NewKeeper(storeService, log.NewNopLogger(), types.NewParams(64, types.DefaultReservationFee), currency)
	require.NoError(t, wider.ValidateDeployment(ctx))
	entry, found := wider.GetName(ctx, addr)
	require.True(t, found)
	require.Equal(t, sample.Name(20), []byte(entry.Name))
}

func TestNewKeeper_InvalidParamsPanics(t *testing.T) {
	require.Panics(t, func() {
		testkeeper.NicksKeeperWithCurrency(t, types.NewParams(0, types.DefaultReservationFee), testkeeper.NewInMemoryCurrency())
	})
}
