package types

// DONTCOVER

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/nicks module sentinel errors
var (
	// ErrTooShort is kept for a future minimum length; nothing raises it today.
	ErrTooShort         = sdkerrors.Register(ModuleName, 1100, "name too short")
	ErrTooLong          = sdkerrors.Register(ModuleName, 1101, "name too long")
	ErrUnnamed          = sdkerrors.Register(ModuleName, 1102, "account is not named")
	ErrMaxLengthReduced = sdkerrors.Register(ModuleName, 1103, "max name length cannot be reduced below a deployed bound")
	ErrInvalidEntry     = sdkerrors.Register(ModuleName, 1104, "invalid name entry")
	ErrEscrowMismatch   = sdkerrors.Register(ModuleName, 1105, "escrow holdings do not match reservations")
)
