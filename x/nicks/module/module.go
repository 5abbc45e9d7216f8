package nicks

import (
	"encoding/json"
	"fmt"

	"github.com/asamuj/nicks/x/nicks/types"
)

// AppModuleBasic carries the stateless parts of the module.
type AppModuleBasic struct{}

// Name returns the name of the module as a string.
func (AppModuleBasic) Name() string {
	return types.ModuleName
}

// DefaultGenesis returns a default GenesisState for the module, marshalled to json.RawMessage.
func (AppModuleBasic) DefaultGenesis() json.RawMessage {
	bz, err := json.Marshal(types.DefaultGenesis())
	if err != nil {
		panic(err)
	}
	return bz
}

// ValidateGenesis decodes and validates the genesis state of the module.
func (AppModuleBasic) ValidateGenesis(bz json.RawMessage) (*types.GenesisState, error) {
	var genState types.GenesisState
	if err := json.Unmarshal(bz, &genState); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	if err := genState.Validate(); err != nil {
		return nil, err
	}
	return &genState, nil
}
