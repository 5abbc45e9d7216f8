package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/asamuj/nicks/x/nicks/types"
)

type (
	Keeper struct {
		storeService store.KVStoreService
		logger       log.Logger

		params   types.Params
		currency types.ReservableCurrency

		Schema            collections.Schema
		Names             collections.Map[sdk.AccAddress, types.NameEntry]
		DeployedMaxLength collections.Item[uint64]
	}
)

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	params types.Params,

	currency types.ReservableCurrency,
) Keeper {
	if err := params.Validate(); err != nil {
		panic(fmt.Sprintf("invalid nicks params: %s", err))
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService: storeService,
		logger:       logger,

		params:            params,
		currency:          currency,
		Names:             collections.NewMap(sb, types.NameOfKey, "name_of", sdk.AccAddressKey, types.NameEntryValue(params.MaxLength)),
		DeployedMaxLength: collections.NewItem(sb, types.DeployedMaxLengthKey, "deployed_max_length", collections.Uint64Value),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetParams returns the deployment constants the keeper was built with.
func (k Keeper) GetParams() types.Params {
	return k.params
}

// GetName looks up the entry stored for an account.
func (k Keeper) GetName(ctx context.Context, addr sdk.AccAddress) (types.NameEntry, bool) {
	entry, err := k.Names.Get(ctx, addr)
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			panic(err)
		}
		return types.NameEntry{}, false
	}
	return entry, true
}

// SetName overwrites the entry stored for an account. The name must already be bounded.
func (k Keeper) SetName(ctx context.Context, addr sdk.AccAddress, entry types.NameEntry) {
	err := k.Names.Set(ctx, addr, entry)
	if err != nil {
		panic(err)
	}
}

// IterateNames walks every entry in key order.
func (k Keeper) IterateNames(ctx context.Context, process func(addr sdk.AccAddress, entry types.NameEntry) (stop bool)) {
	err := k.Names.Walk(ctx, nil, func(addr sdk.AccAddress, entry types.NameEntry) (bool, error) {
		return process(addr, entry), nil
	})
	if err != nil {
		panic(err)
	}
}

// ValidateDeployment refuses a configured MaxLength smaller than one the store
// was already written under, so every stored name keeps decoding. A larger
// bound is recorded.
func (k Keeper) ValidateDeployment(ctx context.Context) error {
	deployed, err := k.DeployedMaxLength.Get(ctx)
	switch {
	case errors.Is(err, collections.ErrNotFound):
		deployed = 0
	case err != nil:
		return err
	}

	configured := uint64(k.params.MaxLength)
	if configured < deployed {
		return types.ErrMaxLengthReduced.Wrapf("configured %d, deployed %d", k.params.MaxLength, deployed)
	}
	if configured > deployed {
		k.Logger().Info("recording max name length", "previous", deployed, "max_length", configured)
		return k.DeployedMaxLength.Set(ctx, configured)
	}
	return nil
}
