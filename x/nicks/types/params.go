package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultDenom is the denomination deposits are taken in unless configured otherwise.
const DefaultDenom = "nick"

// Default parameter values
var (
	DefaultMaxLength      = uint32(16)
	DefaultReservationFee = sdk.NewInt64Coin(DefaultDenom, 100)
)

// Params are the deployment constants of the registry. They are fixed for the
// life of a deployment and handed to the keeper at construction.
type Params struct {
	// MaxLength is the inclusive upper bound on name length in bytes.
	MaxLength uint32 `json:"max_length" mapstructure:"max_length"`
	// ReservationFee is reserved from an account the first time it is named.
	ReservationFee sdk.Coin `json:"reservation_fee" mapstructure:"reservation_fee"`
}

// NewParams creates a new Params instance
func NewParams(maxLength uint32, reservationFee sdk.Coin) Params {
	return Params{
		MaxLength:      maxLength,
		ReservationFee: reservationFee,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultMaxLength, DefaultReservationFee)
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validateMaxLength(p.MaxLength); err != nil {
		return err
	}
	if err := validateReservationFee(p.ReservationFee); err != nil {
		return err
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("max_length=%d reservation_fee=%s", p.MaxLength, p.ReservationFee)
}

func validateMaxLength(v interface{}) error {
	maxLength, ok := v.(uint32)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", v)
	}

	if maxLength == 0 {
		return fmt.Errorf("max length must be positive")
	}

	return nil
}

func validateReservationFee(v interface{}) error {
	fee, ok := v.(sdk.Coin)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", v)
	}

	if err := fee.Validate(); err != nil {
		return fmt.Errorf("invalid reservation fee: %w", err)
	}

	return nil
}
