package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgGetName publishes the sender's current name as a name_queried event.
type MsgGetName struct {
	Sender string `json:"sender"`
}

type MsgGetNameResponse struct{}

func NewMsgGetName(sender string) *MsgGetName {
	return &MsgGetName{Sender: sender}
}

func (msg *MsgGetName) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender address: %s", err)
	}
	return nil
}
