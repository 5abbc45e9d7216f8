package keeper

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/asamuj/nicks/x/nicks/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Params(c context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryParamsResponse{Params: k.GetParams()}, nil
}

// NameOf is the pure read accessor: no origin, no events.
func (k Keeper) NameOf(c context.Context, req *types.QueryNameOfRequest) (*types.QueryNameOfResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	addr := sdk.MustAccAddressFromBech32(req.Address)

	entry, found := k.GetName(c, addr)
	if !found {
		return nil, status.Errorf(codes.NotFound, "no name for account %s", req.Address)
	}

	return &types.QueryNameOfResponse{Name: entry.Name, Deposit: entry.Deposit}, nil
}

func (k Keeper) Reserved(c context.Context, req *types.QueryReservedRequest) (*types.QueryReservedResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	addr := sdk.MustAccAddressFromBech32(req.Address)

	denom := req.Denom
	if denom == "" {
		denom = k.params.ReservationFee.Denom
	}

	return &types.QueryReservedResponse{Amount: k.currency.ReservedBalance(c, addr, denom)}, nil
}

func (k Keeper) AllNames(c context.Context, req *types.QueryAllNamesRequest) (*types.QueryAllNamesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	names, pageRes, err := query.CollectionPaginate(
		c,
		k.Names,
		req.Pagination,
		func(addr sdk.AccAddress, entry types.NameEntry) (types.NamedAccount, error) {
			return types.NamedAccount{
				Address: addr.String(),
				Name:    entry.Name,
				Deposit: entry.Deposit,
			}, nil
		})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryAllNamesResponse{Names: names, Pagination: pageRes}, nil
}
