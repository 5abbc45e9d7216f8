package types_test

import (
	"testing"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/asamuj/nicks/testutil/sample"
	"github.com/asamuj/nicks/x/nicks/types"
)

func TestMsgSetName_ValidateBasic(t *testing.T) {
	tests := []struct {
		name string
		msg  *types.MsgSetName
		err  error
	}{
		{
			name: "invalid address",
			msg:  types.NewMsgSetName("invalid_address", []byte("alice")),
			err:  sdkerrors.ErrInvalidAddress,
		},
		{
			name: "valid",
			msg:  types.NewMsgSetName(sample.AccAddress(), []byte("alice")),
		},
		{
			// the length bound belongs to the keeper
			name: "long name passes basic validation",
			msg:  types.NewMsgSetName(sample.AccAddress(), sample.Name(1024)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgGetName_ValidateBasic(t *testing.T) {
	require.ErrorIs(t, types.NewMsgGetName("").ValidateBasic(), sdkerrors.ErrInvalidAddress)
	require.NoError(t, types.NewMsgGetName(sample.AccAddress()).ValidateBasic())
}
