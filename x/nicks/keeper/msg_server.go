package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/asamuj/nicks/x/nicks/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// SetName names the sender, reserving ReservationFee the first time and
// reusing the stored deposit on every rename.
func (k msgServer) SetName(goCtx context.Context, msg *types.MsgSetName) (*types.MsgSetNameResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}

	name, err := types.NewBoundedName(msg.Name, k.params.MaxLength)
	if err != nil {
		return nil, err
	}

	// Store writes, the reservation and events only reach ctx if every step succeeds.
	cacheCtx, write := ctx.CacheContext()

	var existing *types.NameEntry
	if entry, found := k.Keeper.GetName(cacheCtx, sender); found {
		existing = &entry
	}

	deposit, created, err := k.depositFor(cacheCtx, sender, existing)
	if err != nil {
		return nil, err
	}

	eventType := types.EventTypeNameChanged
	if created {
		eventType = types.EventTypeNameSet
	}
	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyWho, sender.String()),
		),
	)

	k.Keeper.SetName(cacheCtx, sender, types.NewNameEntry(name, deposit))
	write()

	k.Logger().Info("name set",
		"who", sender.String(),
		"length", len(name),
		"deposit", deposit.String(),
		"created", created,
	)

	return &types.MsgSetNameResponse{
		Deposit: deposit,
		Created: created,
	}, nil
}

// GetName publishes the sender's name through a name_queried event.
func (k msgServer) GetName(goCtx context.Context, msg *types.MsgGetName) (*types.MsgGetNameResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}

	entry, found := k.Keeper.GetName(ctx, sender)
	if !found {
		return nil, types.ErrUnnamed.Wrapf("account %s has no name", sender.String())
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeNameQueried,
			sdk.NewAttribute(types.AttributeKeyWho, sender.String()),
			sdk.NewAttribute(types.AttributeKeyName, entry.Name.Hex()),
		),
	)

	k.Logger().Debug("name queried", "who", sender.String())

	return &types.MsgGetNameResponse{}, nil
}
