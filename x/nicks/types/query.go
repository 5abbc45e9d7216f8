package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/query"
)

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryNameOfRequest struct {
	Address string `json:"address"`
}

type QueryNameOfResponse struct {
	Name    []byte   `json:"name"`
	Deposit sdk.Coin `json:"deposit"`
}

type QueryReservedRequest struct {
	Address string `json:"address"`
	// Denom defaults to the reservation fee denom when empty.
	Denom string `json:"denom,omitempty"`
}

type QueryReservedResponse struct {
	Amount sdk.Coin `json:"amount"`
}

type QueryAllNamesRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type NamedAccount struct {
	Address string   `json:"address"`
	Name    []byte   `json:"name"`
	Deposit sdk.Coin `json:"deposit"`
}

type QueryAllNamesResponse struct {
	Names      []NamedAccount      `json:"names"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// ValidateBasic validates the QueryNameOfRequest
func (req *QueryNameOfRequest) ValidateBasic() error {
	if req.Address == "" {
		return errors.ErrInvalidRequest.Wrap("address cannot be empty")
	}

	if _, err := sdk.AccAddressFromBech32(req.Address); err != nil {
		return errors.ErrInvalidAddress.Wrapf("invalid address: %s", err.Error())
	}

	return nil
}

// ValidateBasic validates the QueryReservedRequest
func (req *QueryReservedRequest) ValidateBasic() error {
	if req.Address == "" {
		return errors.ErrInvalidRequest.Wrap("address cannot be empty")
	}

	if _, err := sdk.AccAddressFromBech32(req.Address); err != nil {
		return errors.ErrInvalidAddress.Wrapf("invalid address: %s", err.Error())
	}

	if req.Denom != "" {
		if err := sdk.ValidateDenom(req.Denom); err != nil {
			return errors.ErrInvalidRequest.Wrapf("invalid denom: %s", err.Error())
		}
	}

	return nil
}
