package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/query"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	nicks "github.com/asamuj/nicks/x/nicks/module"
	nickskeeper "github.com/asamuj/nicks/x/nicks/keeper"
	nickstypes "github.com/asamuj/nicks/x/nicks/types"
)

const (
	// FaucetModuleName is the module account that mints coins for Fund.
	FaucetModuleName = "faucet"
	// GovModuleName only names the authority address of the auth and bank keepers.
	GovModuleName = "gov"
)

var maccPerms = map[string][]string{
	FaucetModuleName:      {authtypes.Minter},
	nickstypes.ModuleName: nil,
}

// Receipt describes a committed transition.
type Receipt struct {
	Height int64
	Events sdk.Events
}

// Host runs the nicks module against real auth and bank keepers over a
// persistent multistore. Transitions are applied one at a time; each one
// commits a new version.
type Host struct {
	mu sync.Mutex

	chainID string
	db      dbm.DB
	cms     storetypes.CommitMultiStore
	logger  log.Logger

	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.BaseKeeper
	Escrow        nickskeeper.EscrowCurrency
	NicksKeeper   nickskeeper.Keeper

	msgServer nickstypes.MsgServer
}

// OpenDB opens the configured cosmos-db backend under <home>/data.
func OpenDB(cfg Config) (dbm.DB, error) {
	backend := dbm.BackendType(cfg.DBBackend)
	if backend == dbm.MemDBBackend {
		return dbm.NewMemDB(), nil
	}
	if err := os.MkdirAll(cfg.DataDir(), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return dbm.NewDB("nicks", backend, cfg.DataDir())
}

// NewHost loads the latest committed state from db. A fresh database gets
// genesis applied and committed as version 1; an existing one is checked
// against the configured params.
func NewHost(cfg Config, db dbm.DB, logger log.Logger) (*Host, error) {
	params, err := cfg.Nicks.Params()
	if err != nil {
		return nil, err
	}

	keys := storetypes.NewKVStoreKeys(authtypes.StoreKey, banktypes.StoreKey, nickstypes.StoreKey)
	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range keys {
		// nil db gives every store its own prefix in the shared database
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	registry := codectypes.NewInterfaceRegistry()
	cryptocodec.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	authority := authtypes.NewModuleAddress(GovModuleName).String()
	bech32Prefix := sdk.GetConfig().GetBech32AccountAddrPrefix()

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(keys[authtypes.StoreKey]),
		authtypes.ProtoBaseAccount,
		maccPerms,
		addresscodec.NewBech32Codec(bech32Prefix),
		bech32Prefix,
		authority,
	)
	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(keys[banktypes.StoreKey]),
		accountKeeper,
		blockedAddrs(),
		authority,
		logger,
	)

	nicksStoreService := runtime.NewKVStoreService(keys[nickstypes.StoreKey])
	escrow := nickskeeper.NewEscrowCurrency(nicksStoreService, logger, bankKeeper, nickstypes.ModuleName)
	nicksKeeper := nickskeeper.NewKeeper(nicksStoreService, logger, params, escrow)

	h := &Host{
		chainID:       cfg.ChainID,
		db:            db,
		cms:           cms,
		logger:        logger.With("module", "host"),
		AccountKeeper: accountKeeper,
		BankKeeper:    bankKeeper,
		Escrow:        escrow,
		NicksKeeper:   nicksKeeper,
		msgServer:     nickskeeper.NewMsgServerImpl(nicksKeeper),
	}

	if cms.LastCommitID().Version == 0 {
		if err := h.initChain(cfg); err != nil {
			return nil, err
		}
		return h, nil
	}

	if err := h.checkDeployment(); err != nil {
		return nil, err
	}
	h.logger.Info("loaded state", "height", h.Height(), "max_length", params.MaxLength)
	return h, nil
}

// checkDeployment rejects a MaxLength below the recorded one or an escrow that
// does not hold its bookings, and commits a transition only when the configured
// bound grew.
func (h *Host) checkDeployment() error {
	var grown bool
	err := h.query(func(ctx sdk.Context) error {
		deployed, err := h.NicksKeeper.DeployedMaxLength.Get(ctx)
		if err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		grown = uint64(h.NicksKeeper.GetParams().MaxLength) > deployed
		if err := h.Escrow.ValidateHoldings(ctx); err != nil {
			return err
		}
		return h.NicksKeeper.ValidateDeployment(ctx)
	})
	if err != nil || !grown {
		return err
	}
	_, err = h.Deliver(func(ctx sdk.Context) error {
		return h.NicksKeeper.ValidateDeployment(ctx)
	})
	return err
}

func blockedAddrs() map[string]bool {
	blocked := make(map[string]bool, len(maccPerms))
	for name := range maccPerms {
		blocked[authtypes.NewModuleAddress(name).String()] = true
	}
	return blocked
}

func (h *Host) initChain(cfg Config) error {
	genState := nickstypes.DefaultGenesis()
	if cfg.Genesis.NicksFile != "" {
		bz, err := os.ReadFile(cfg.Genesis.NicksFile)
		if err != nil {
			return fmt.Errorf("failed to read nicks genesis: %w", err)
		}
		genState, err = nicks.AppModuleBasic{}.ValidateGenesis(bz)
		if err != nil {
			return err
		}
	}
	// names are bounded by the configured params, not whatever the file carried
	genState.Params = h.NicksKeeper.GetParams()
	if err := genState.Validate(); err != nil {
		return err
	}

	ctx := h.newContext(h.cms, 1)
	if err := h.AccountKeeper.Params.Set(ctx, authtypes.DefaultParams()); err != nil {
		return err
	}
	if err := h.BankKeeper.SetParams(ctx, banktypes.DefaultParams()); err != nil {
		return err
	}
	nicks.InitGenesis(ctx, h.NicksKeeper, h.Escrow, *genState)
	if err := h.fundEscrow(ctx); err != nil {
		return err
	}

	for _, acc := range cfg.Genesis.Accounts {
		addr, err := sdk.AccAddressFromBech32(acc.Address)
		if err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "genesis account %q: %s", acc.Address, err)
		}
		coins, err := sdk.ParseCoinsNormalized(acc.Coins)
		if err != nil {
			return fmt.Errorf("genesis account %s: invalid coins %q: %w", acc.Address, acc.Coins, err)
		}
		if err := h.mint(ctx, addr, coins); err != nil {
			return err
		}
	}

	commitID := h.cms.Commit()
	h.logger.Info("initialized chain",
		"height", commitID.Version,
		"chain_id", h.chainID,
		"names", len(genState.Names),
		"accounts", len(cfg.Genesis.Accounts),
	)
	return nil
}

// fundEscrow mints the booked reservation total into the nicks module account.
func (h *Host) fundEscrow(ctx context.Context) error {
	total, err := h.Escrow.TotalReserved(ctx)
	if err != nil {
		return err
	}
	if !total.IsZero() {
		if err := h.BankKeeper.MintCoins(ctx, FaucetModuleName, total); err != nil {
			return err
		}
		if err := h.BankKeeper.SendCoinsFromModuleToModule(ctx, FaucetModuleName, nickstypes.ModuleName, total); err != nil {
			return err
		}
	}
	return h.Escrow.ValidateHoldings(ctx)
}

func (h *Host) newContext(ms storetypes.MultiStore, height int64) sdk.Context {
	header := cmtproto.Header{
		ChainID: h.chainID,
		Height:  height,
		Time:    time.Now().UTC(),
	}
	return sdk.NewContext(ms, header, false, h.logger)
}

func (h *Host) mint(ctx context.Context, addr sdk.AccAddress, coins sdk.Coins) error {
	if coins.IsZero() {
		return nil
	}
	if err := h.BankKeeper.MintCoins(ctx, FaucetModuleName, coins); err != nil {
		return err
	}
	return h.BankKeeper.SendCoinsFromModuleToAccount(ctx, FaucetModuleName, addr, coins)
}

// Height is the last committed version.
func (h *Host) Height() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cms.LastCommitID().Version
}

// Deliver applies fn as one transition at the next height. If fn fails nothing
// it wrote is kept and no version is committed.
func (h *Host) Deliver(fn func(ctx sdk.Context) error) (Receipt, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	height := h.cms.LastCommitID().Version + 1
	ctx := h.newContext(h.cms, height)
	cacheCtx, write := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		h.logger.Debug("transition failed", "height", height, "error", err)
		return Receipt{}, err
	}
	write()

	commitID := h.cms.Commit()
	return Receipt{Height: commitID.Version, Events: ctx.EventManager().Events()}, nil
}

// query runs fn against a throwaway branch of the latest committed state.
func (h *Host) query(fn func(ctx sdk.Context) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := h.newContext(h.cms.CacheMultiStore(), h.cms.LastCommitID().Version)
	return fn(ctx)
}

// SetName dispatches a set_name signed by sender.
func (h *Host) SetName(sender sdk.AccAddress, name []byte) (*nickstypes.MsgSetNameResponse, Receipt, error) {
	var res *nickstypes.MsgSetNameResponse
	receipt, err := h.Deliver(func(ctx sdk.Context) error {
		var err error
		res, err = h.msgServer.SetName(ctx, nickstypes.NewMsgSetName(sender.String(), name))
		return err
	})
	return res, receipt, err
}

// GetName dispatches a get_name signed by sender.
func (h *Host) GetName(sender sdk.AccAddress) (Receipt, error) {
	return h.Deliver(func(ctx sdk.Context) error {
		_, err := h.msgServer.GetName(ctx, nickstypes.NewMsgGetName(sender.String()))
		return err
	})
}

// Fund mints coins from the faucet into addr.
func (h *Host) Fund(addr sdk.AccAddress, coins sdk.Coins) (Receipt, error) {
	if !coins.IsValid() {
		return Receipt{}, errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "%s", coins)
	}
	receipt, err := h.Deliver(func(ctx sdk.Context) error {
		return h.mint(ctx, addr, coins)
	})
	if err == nil {
		h.logger.Info("funded account", "account", addr.String(), "amount", coins.String(), "height", receipt.Height)
	}
	return receipt, err
}

func (h *Host) NameOf(addr sdk.AccAddress) (res *nickstypes.QueryNameOfResponse, err error) {
	err = h.query(func(ctx sdk.Context) error {
		res, err = h.NicksKeeper.NameOf(ctx, &nickstypes.QueryNameOfRequest{Address: addr.String()})
		return err
	})
	return res, err
}

func (h *Host) Reserved(addr sdk.AccAddress, denom string) (res *nickstypes.QueryReservedResponse, err error) {
	err = h.query(func(ctx sdk.Context) error {
		res, err = h.NicksKeeper.Reserved(ctx, &nickstypes.QueryReservedRequest{Address: addr.String(), Denom: denom})
		return err
	})
	return res, err
}

// Balance returns the spendable (free) balance of addr in denom.
func (h *Host) Balance(addr sdk.AccAddress, denom string) (coin sdk.Coin, err error) {
	err = h.query(func(ctx sdk.Context) error {
		coin = h.BankKeeper.SpendableCoin(ctx, addr, denom)
		return nil
	})
	return coin, err
}

func (h *Host) Params() nickstypes.Params {
	return h.NicksKeeper.GetParams()
}

func (h *Host) AllNames(pagination *query.PageRequest) (res *nickstypes.QueryAllNamesResponse, err error) {
	err = h.query(func(ctx sdk.Context) error {
		res, err = h.NicksKeeper.AllNames(ctx, &nickstypes.QueryAllNamesRequest{Pagination: pagination})
		return err
	})
	return res, err
}

// ExportGenesis exports the nicks state at the latest committed height.
func (h *Host) ExportGenesis() (genState *nickstypes.GenesisState, err error) {
	err = h.query(func(ctx sdk.Context) error {
		genState = nicks.ExportGenesis(ctx, h.NicksKeeper, h.Escrow)
		return nil
	})
	return genState, err
}

func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.db.Close()
}
