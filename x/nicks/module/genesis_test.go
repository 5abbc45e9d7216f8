package nicks_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/asamuj/nicks/testutil/keeper"
	"github.com/asamuj/nicks/testutil/sample"
	nicks "github.com/asamuj/nicks/x/nicks/module"
	"github.com/asamuj/nicks/x/nicks/types"
)

func TestGenesis(t *testing.T) {
	alice := sample.AccAddress()
	bob := sample.AccAddress()
	genesisState := types.GenesisState{
		Params: types.DefaultParams(),
		Names: []types.GenesisName{
			{Address: alice, Name: []byte("alice"), Deposit: sdk.NewInt64Coin(types.DefaultDenom, 100)},
			{Address: bob, Name: []byte{0xff, 0x00}, Deposit: sdk.NewInt64Coin(types.DefaultDenom, 70)},
		},
		Reservations: []types.GenesisReservation{
			{Address: alice, Amount: sdk.NewInt64Coin(types.DefaultDenom, 100)},
			{Address: bob, Amount: sdk.NewInt64Coin(types.DefaultDenom, 70)},
		},
	}

	k, escrow, ctx, _ := keepertest.NicksKeeperWithEscrow(t)
	nicks.InitGenesis(ctx, k, escrow, genesisState)
	got := nicks.ExportGenesis(ctx, k, escrow)
	require.NotNil(t, got)
	require.NoError(t, got.Validate())

	require.Equal(t, genesisState.Params.MaxLength, got.Params.MaxLength)
	require.Len(t, got.Names, len(genesisState.Names))
	require.Len(t, got.Reservations, len(genesisState.Reservations))

	want := map[string]types.GenesisName{}
	for _, elem := range genesisState.Names {
		want[elem.Address] = elem
	}
	for _, elem := range got.Names {
		expected, ok := want[elem.Address]
		require.True(t, ok, "unexpected account %s", elem.Address)
		require.Equal(t, expected.Name, elem.Name)
		require.Equal(t, expected.Deposit.String(), elem.Deposit.String())

		addr := sdk.MustAccAddressFromBech32(elem.Address)
		require.Equal(t, expected.Deposit.String(), escrow.ReservedBalance(ctx, addr, expected.Deposit.Denom).String())
	}

	total, err := escrow.TotalReserved(ctx)
	require.NoError(t, err)
	require.Equal(t, "170nick", total.String())

	deployed, err := k.DeployedMaxLength.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(types.DefaultMaxLength), deployed)
}

func TestInitGenesis_InvalidPanics(t *testing.T) {
	k, escrow, ctx, _ := keepertest.NicksKeeperWithEscrow(t)
	require.Panics(t, func() {
		nicks.InitGenesis(ctx, k, escrow, types.GenesisState{
			Params: types.DefaultParams(),
			Names:  []types.GenesisName{{Address: "bad", Name: []byte("x"), Deposit: types.DefaultReservationFee}},
		})
	})

	addr := sample.AccAddress()
	require.Panics(t, func() {
		nicks.InitGenesis(ctx, k, escrow, types.GenesisState{
			Params: types.DefaultParams(),
			Names:  []types.GenesisName{{Address: addr, Name: []byte("x"), Deposit: types.DefaultReservationFee}},
		})
	}, "a deposit without a reservation is rejected")
}

func TestAppModuleBasic_Genesis(t *testing.T) {
	basic := nicks.AppModuleBasic{}
	require.Equal(t, types.ModuleName, basic.Name())

	genState, err := basic.ValidateGenesis(basic.DefaultGenesis())
	require.NoError(t, err)
	require.Equal(t, types.DefaultMaxLength, genState.Params.MaxLength)
	require.Empty(t, genState.Names)

	_, err = basic.ValidateGenesis([]byte(`{"params":{"max_length":0}}`))
	require.Error(t, err)

	_, err = basic.ValidateGenesis([]byte(`not json`))
	require.Error(t, err)
}
