// Package config resolves the run configuration from flags, environment,
// an optional TOML file and static defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultPangeaDomain = "aws.us.pangea.cloud"
	DefaultModel        = "gpt-4o-mini"

	EnvVaultToken   = "PANGEA_VAULT_TOKEN"
	EnvPangeaDomain = "PANGEA_DOMAIN"

	FlagVaultItemID  = "vault-item-id"
	FlagVaultToken   = "vault-token"
	FlagPangeaDomain = "pangea-domain"
	FlagModel        = "model"
	FlagConfigFile   = "config"
	FlagEnvFile      = "env-file"
)

var ErrUsage = errors.New("usage error")

// Config is built once at startup and never mutated afterwards.
type Config struct {
	VaultItemID  string
	VaultToken   Secret
	PangeaDomain string
	Model        string
	Prompt       string
}

func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("vault_item_id", c.VaultItemID),
		slog.Any("vault_token", c.VaultToken),
		slog.String("pangea_domain", c.PangeaDomain),
		slog.String("model", c.Model),
		slog.Int("prompt_len", len(c.Prompt)),
	)
}

// Secret keeps credentials out of logs and formatted errors.
type Secret string

const redacted = "[REDACTED]"

func (s Secret) Reveal() string { return string(s) }

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

func (s Secret) GoString() string { return fmt.Sprintf("config.Secret(%q)", s.String()) }

func (s Secret) LogValue() slog.Value { return slog.StringValue(s.String()) }

// BindFlags registers the configuration flags on flags.
func BindFlags(flags *pflag.FlagSet) {
	flags.String(FlagVaultItemID, "", "The item ID of the OpenAI API key item in Pangea Vault.")
	flags.String(FlagVaultToken, "", "Pangea Vault API token. May also be set via the "+EnvVaultToken+" environment variable.")
	flags.String(FlagPangeaDomain, DefaultPangeaDomain, "Pangea API domain. May also be set via the "+EnvPangeaDomain+" environment variable.")
	flags.String(FlagModel, DefaultModel, "OpenAI model.")
	flags.String(FlagConfigFile, "", "Path to a TOML config file (default $XDG_CONFIG_HOME/vaultchat/config.toml)")
	flags.String(FlagEnvFile, DefaultEnvFile, "Path to a dotenv file loaded before reading the environment")
}

// Resolve assembles a Config from parsed flags, positional args and file
// values. Environment variables are read at call time.
func Resolve(flags *pflag.FlagSet, args []string, file File) (Config, error) {
	v := viper.New()

	v.SetDefault(FlagPangeaDomain, firstNonEmpty(file.PangeaDomain, DefaultPangeaDomain))
	v.SetDefault(FlagModel, firstNonEmpty(file.Model, DefaultModel))

	for _, name := range []string{FlagVaultItemID, FlagVaultToken, FlagPangeaDomain, FlagModel} {
		flag := flags.Lookup(name)
		if flag == nil {
			return Config{}, fmt.Errorf("flag --%s is not registered", name)
		}
		if err := v.BindPFlag(name, flag); err != nil {
			return Config{}, fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	if err := v.BindEnv(FlagVaultToken, EnvVaultToken); err != nil {
		return Config{}, fmt.Errorf("bind env %s: %w", EnvVaultToken, err)
	}
	if err := v.BindEnv(FlagPangeaDomain, EnvPangeaDomain); err != nil {
		return Config{}, fmt.Errorf("bind env %s: %w", EnvPangeaDomain, err)
	}

	if len(args) > 1 {
		return Config{}, fmt.Errorf("%w: expected a single prompt argument, got %d", ErrUsage, len(args))
	}

	cfg := Config{
		VaultItemID:  strings.TrimSpace(v.GetString(FlagVaultItemID)),
		VaultToken:   Secret(strings.TrimSpace(v.GetString(FlagVaultToken))),
		PangeaDomain: strings.TrimSpace(v.GetString(FlagPangeaDomain)),
		Model:        strings.TrimSpace(v.GetString(FlagModel)),
	}
	missing := cfg.missing()
	if len(args) == 1 {
		cfg.Prompt = args[0]
	} else {
		missing = append(missing, "prompt")
	}

	if err := missingInputs(missing); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// missing lists the required inputs that resolved to nothing. The prompt is
// checked by Resolve: an empty prompt argument is still a prompt.
func (c Config) missing() []string {
	var missing []string
	if c.VaultItemID == "" {
		missing = append(missing, "--"+FlagVaultItemID)
	}
	if c.VaultToken == "" {
		missing = append(missing, "--"+FlagVaultToken+" (or "+EnvVaultToken+")")
	}
	if c.PangeaDomain == "" {
		missing = append(missing, "--"+FlagPangeaDomain)
	}
	if c.Model == "" {
		missing = append(missing, "--"+FlagModel)
	}

	return missing
}

// missingInputs reports every missing input in a single usage error.
func missingInputs(missing []string) error {
	if len(missing) == 0 {
		return nil
	}

	return fmt.Errorf("%w: missing required %s", ErrUsage, strings.Join(missing, ", "))
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
