package public

import (
	"unicode/utf8"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type StatusResponse struct {
	Status string `json:"status"`
	Height int64  `json:"height"`
}

type ParamsResponse struct {
	MaxLength      uint32   `json:"max_length"`
	ReservationFee sdk.Coin `json:"reservation_fee"`
}

// NameResponse carries the stored bytes hex encoded. Text is only set when the
// bytes happen to be valid UTF-8.
type NameResponse struct {
	Address string   `json:"address"`
	Name    string   `json:"name"`
	Text    string   `json:"text,omitempty"`
	Deposit sdk.Coin `json:"deposit"`
}

type NamesResponse struct {
	Names   []NameResponse `json:"names"`
	NextKey string         `json:"next_key,omitempty"`
	Total   uint64         `json:"total,omitempty"`
}

type ReservedResponse struct {
	Address  string   `json:"address"`
	Reserved sdk.Coin `json:"reserved"`
}

type BalanceResponse struct {
	Address  string   `json:"address"`
	Free     sdk.Coin `json:"free"`
	Reserved sdk.Coin `json:"reserved"`
}

func textOf(name []byte) string {
	if len(name) == 0 || !utf8.Valid(name) {
		return ""
	}
	return string(name)
}
