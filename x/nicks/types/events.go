package types

// Event types
const (
	EventTypeNameSet     = "name_set"
	EventTypeNameChanged = "name_changed"
	EventTypeNameQueried = "name_queried"
)

// Event attribute keys
const (
	AttributeKeyWho = "who"
	// AttributeKeyName carries the hex encoded name bytes.
	AttributeKeyName = "name"
)
