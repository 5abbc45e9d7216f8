package types

import (
	"context"
)

// MsgServer is the call surface of the module. Call indices follow declaration order.
type MsgServer interface {
	// SetName is call index 0.
	SetName(context.Context, *MsgSetName) (*MsgSetNameResponse, error)
	// GetName is call index 1.
	GetName(context.Context, *MsgGetName) (*MsgGetNameResponse, error)
}

// QueryServer is the read-only surface of the module.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	NameOf(context.Context, *QueryNameOfRequest) (*QueryNameOfResponse, error)
	Reserved(context.Context, *QueryReservedRequest) (*QueryReservedResponse, error)
	AllNames(context.Context, *QueryAllNamesRequest) (*QueryAllNamesResponse, error)
}
