package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pelletier/go-toml"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/asamuj/nicks/x/nicks/types"
)

const (
	// ConfigFileName is the config file looked up under <home>/config.
	ConfigFileName = "nicks"
	// EnvPrefix prefixes environment overrides, e.g. NICKS_NICKS_MAX_LENGTH.
	EnvPrefix = "NICKS"
)

// DefaultNodeHome is where nicksd keeps its config and data unless --home is given.
var DefaultNodeHome = func() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".nicks"
	}
	return filepath.Join(userHome, ".nicks")
}()

type Config struct {
	Home      string        `mapstructure:"-" toml:"-"`
	ChainID   string        `mapstructure:"chain_id" toml:"chain_id"`
	DBBackend string        `mapstructure:"db_backend" toml:"db_backend"`
	LogLevel  string        `mapstructure:"log_level" toml:"log_level"`
	LogFormat string        `mapstructure:"log_format" toml:"log_format"`
	Nicks     NicksConfig   `mapstructure:"nicks" toml:"nicks"`
	Genesis   GenesisConfig `mapstructure:"genesis" toml:"genesis"`
	API       APIConfig     `mapstructure:"api" toml:"api"`
}

type NicksConfig struct {
	MaxLength      uint32 `mapstructure:"max_length" toml:"max_length"`
	ReservationFee string `mapstructure:"reservation_fee" toml:"reservation_fee"`
}

type GenesisConfig struct {
	// NicksFile optionally points at a JSON nicks genesis to import on a fresh database.
	NicksFile string           `mapstructure:"nicks_file" toml:"nicks_file"`
	Accounts  []GenesisAccount `mapstructure:"accounts" toml:"accounts"`
}

type GenesisAccount struct {
	Address string `mapstructure:"address" toml:"address"`
	Coins   string `mapstructure:"coins" toml:"coins"`
}

type APIConfig struct {
	Address string `mapstructure:"address" toml:"address"`
}

func DefaultConfig() Config {
	params := types.DefaultParams()
	return Config{
		Home:      DefaultNodeHome,
		ChainID:   "nicks-local",
		DBBackend: "goleveldb",
		LogLevel:  "info",
		LogFormat: "plain",
		Nicks: NicksConfig{
			MaxLength:      params.MaxLength,
			ReservationFee: params.ReservationFee.String(),
		},
		Genesis: GenesisConfig{Accounts: []GenesisAccount{}},
		API:     APIConfig{Address: "127.0.0.1:8080"},
	}
}

// Params converts the [nicks] section into module params.
func (c NicksConfig) Params() (types.Params, error) {
	fee, err := sdk.ParseCoinNormalized(c.ReservationFee)
	if err != nil {
		return types.Params{}, fmt.Errorf("invalid reservation_fee %q: %w", c.ReservationFee, err)
	}
	params := types.NewParams(c.MaxLength, fee)
	if err := params.Validate(); err != nil {
		return types.Params{}, err
	}
	return params, nil
}

func (c Config) ConfigDir() string {
	return filepath.Join(c.Home, "config")
}

func (c Config) DataDir() string {
	return filepath.Join(c.Home, "data")
}

func (c Config) ConfigFile() string {
	return filepath.Join(c.ConfigDir(), ConfigFileName+".toml")
}

// LoadConfig reads <home>/config/nicks.toml, applies NICKS_* environment
// overrides on top and fills anything missing from DefaultConfig. A missing
// file is not an error.
func LoadConfig(v *viper.Viper, home string) (Config, error) {
	defaults := DefaultConfig()
	v.SetDefault("chain_id", defaults.ChainID)
	v.SetDefault("db_backend", defaults.DBBackend)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("nicks.max_length", defaults.Nicks.MaxLength)
	v.SetDefault("nicks.reservation_fee", defaults.Nicks.ReservationFee)
	v.SetDefault("api.address", defaults.API.Address)

	v.SetConfigName(ConfigFileName)
	v.SetConfigType("toml")
	v.AddConfigPath(filepath.Join(home, "config"))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Home = home
	return cfg, nil
}

// WriteConfig writes cfg as TOML to its config file, creating the directory.
func WriteConfig(cfg Config) error {
	if err := os.MkdirAll(cfg.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	bz, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(cfg.ConfigFile(), bz, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// NewLogger builds the structured logger used by the host and every keeper.
func NewLogger(w io.Writer, level, format string) (log.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", level, err)
	}
	opts := []log.Option{log.LevelOption(lvl)}
	switch format {
	case "json":
		opts = append(opts, log.OutputJSONOption())
	case "plain", "":
		opts = append(opts, log.ColorOption(false))
	default:
		return nil, fmt.Errorf("invalid log_format %q: want plain or json", format)
	}
	return log.NewLogger(w, opts...), nil
}
