package types

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NameEntryValue returns the collections value codec for NameEntry. The length
// bound is part of the persisted type, so it is enforced on decode as well as
// on encode.
func NameEntryValue(maxLength uint32) collcodec.ValueCodec[NameEntry] {
	return nameEntryValueCodec{maxLength: maxLength}
}

type nameEntryValueCodec struct {
	maxLength uint32
}

// Encode frames the entry as uvarint(len name) | name | uvarint(len denom) | denom | amount.
func (c nameEntryValueCodec) Encode(entry NameEntry) ([]byte, error) {
	if err := entry.Validate(c.maxLength); err != nil {
		return nil, err
	}
	amount, err := sdk.IntValue.Encode(entry.Deposit.Amount)
	if err != nil {
		return nil, fmt.Errorf("encode deposit amount: %w", err)
	}

	buf := make([]byte, 0, 2*binary.MaxVarintLen64+len(entry.Name)+len(entry.Deposit.Denom)+len(amount))
	buf = binary.AppendUvarint(buf, uint64(len(entry.Name)))
	buf = append(buf, entry.Name...)
	buf = binary.AppendUvarint(buf, uint64(len(entry.Deposit.Denom)))
	buf = append(buf, entry.Deposit.Denom...)
	buf = append(buf, amount...)
	return buf, nil
}

func (c nameEntryValueCodec) Decode(b []byte) (NameEntry, error) {
	name, rest, err := readChunk(b, "name")
	if err != nil {
		return NameEntry{}, err
	}
	if uint64(len(name)) > uint64(c.maxLength) {
		return NameEntry{}, ErrTooLong.Wrapf("stored name is %d bytes, max is %d", len(name), c.maxLength)
	}
	denom, rest, err := readChunk(rest, "denom")
	if err != nil {
		return NameEntry{}, err
	}
	if len(rest) == 0 {
		return NameEntry{}, ErrInvalidEntry.Wrap("missing deposit amount")
	}
	amount, err := sdk.IntValue.Decode(rest)
	if err != nil {
		return NameEntry{}, ErrInvalidEntry.Wrapf("decode deposit amount: %s", err)
	}
	return NewNameEntry(name, sdk.Coin{Denom: string(denom), Amount: amount}), nil
}

func (c nameEntryValueCodec) EncodeJSON(entry NameEntry) ([]byte, error) {
	if err := entry.Validate(c.maxLength); err != nil {
		return nil, err
	}
	return json.Marshal(entry)
}

func (c nameEntryValueCodec) DecodeJSON(b []byte) (NameEntry, error) {
	var entry NameEntry
	if err := json.Unmarshal(b, &entry); err != nil {
		return NameEntry{}, ErrInvalidEntry.Wrapf("decode json: %s", err)
	}
	if err := entry.Validate(c.maxLength); err != nil {
		return NameEntry{}, err
	}
	return entry, nil
}

func (c nameEntryValueCodec) Stringify(entry NameEntry) string {
	return fmt.Sprintf("NameEntry{Name: %x, Deposit: %s}", []byte(entry.Name), entry.Deposit)
}

func (c nameEntryValueCodec) ValueType() string {
	return "nicks/NameEntry"
}

func readChunk(b []byte, field string) (chunk []byte, rest []byte, err error) {
	size, read := binary.Uvarint(b)
	if read <= 0 {
		return nil, nil, ErrInvalidEntry.Wrapf("malformed %s length prefix", field)
	}
	b = b[read:]
	if uint64(len(b)) < size {
		return nil, nil, ErrInvalidEntry.Wrapf("%s truncated: want %d bytes, have %d", field, size, len(b))
	}
	chunk = make([]byte, size)
	copy(chunk, b[:size])
	return chunk, b[size:], nil
}
