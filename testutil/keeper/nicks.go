package keeper

import (
	"testing"

	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/asamuj/nicks/x/nicks/keeper"
	"github.com/asamuj/nicks/x/nicks/types"
)

// NicksMocks holds all the mock keepers for testing
type NicksMocks struct {
	Currency *MockReservableCurrency
}

func NicksKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	ctrl := gomock.NewController(t)
	currency := NewMockReservableCurrency(ctrl)
	k, ctx, _ := NicksKeeperWithCurrency(t, types.DefaultParams(), currency)

	return k, ctx
}

func NicksKeeperReturningMocks(t testing.TB) (keeper.Keeper, sdk.Context, NicksMocks) {
	ctrl := gomock.NewController(t)
	currency := NewMockReservableCurrency(ctrl)

	k, ctx, _ := NicksKeeperWithCurrency(t, types.DefaultParams(), currency)

	mocks := NicksMocks{
		Currency: currency,
	}

	return k, ctx, mocks
}

// NicksKeeperWithCurrency builds a keeper over a fresh in-memory store. The
// KVStoreService is returned so tests can build more keepers on the same store.
func NicksKeeperWithCurrency(
	t testing.TB,
	params types.Params,
	currency types.ReservableCurrency,
) (keeper.Keeper, sdk.Context, corestore.KVStoreService) {
	storeService, ctx := nicksStore(t)

	k := keeper.NewKeeper(
		storeService,
		log.NewNopLogger(),
		params,
		currency,
	)

	return k, ctx, storeService
}

// EscrowCurrency builds an escrow on a fresh in-memory store backed by a mocked bank.
func EscrowCurrency(t testing.TB) (keeper.EscrowCurrency, sdk.Context, *MockBankKeeper) {
	ctrl := gomock.NewController(t)
	bankKeeper := NewMockBankKeeper(ctrl)
	storeService, ctx := nicksStore(t)

	escrow := keeper.NewEscrowCurrency(storeService, log.NewNopLogger(), bankKeeper, types.ModuleName)
	return escrow, ctx, bankKeeper
}

// NicksKeeperWithEscrow builds a keeper whose currency is an escrow over a mocked
// bank, both on the same in-memory store.
func NicksKeeperWithEscrow(t testing.TB) (keeper.Keeper, keeper.EscrowCurrency, sdk.Context, *MockBankKeeper) {
	ctrl := gomock.NewController(t)
	bankKeeper := NewMockBankKeeper(ctrl)
	storeService, ctx := nicksStore(t)

	escrow := keeper.NewEscrowCurrency(storeService, log.NewNopLogger(), bankKeeper, types.ModuleName)
	k := keeper.NewKeeper(storeService, log.NewNopLogger(), types.DefaultParams(), escrow)
	return k, escrow, ctx, bankKeeper
}

func nicksStore(t testing.TB) (corestore.KVStoreService, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	return runtime.NewKVStoreService(storeKey), ctx
}
