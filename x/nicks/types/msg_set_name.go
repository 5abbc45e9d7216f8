package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgSetName names the sender, or renames it if it already has a name.
type MsgSetName struct {
	Sender string `json:"sender"`
	Name   []byte `json:"name"`
}

// MsgSetNameResponse reports the deposit held for the sender after the call.
type MsgSetNameResponse struct {
	Deposit sdk.Coin `json:"deposit"`
	// Created is true when this call took the reservation.
	Created bool `json:"created"`
}

func NewMsgSetName(sender string, name []byte) *MsgSetName {
	return &MsgSetName{
		Sender: sender,
		Name:   name,
	}
}

// ValidateBasic only checks the sender; the length bound is a keeper constant.
func (msg *MsgSetName) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}
	return nil
}
