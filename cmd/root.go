package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/vaultchat/internal/application"
	"github.com/bnema/vaultchat/internal/config"
	"github.com/bnema/vaultchat/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	exitFailure = 1
	exitUsage   = 2

	flagVerbose = "verbose"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// ExitCode maps an Execute error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrUsage):
		return exitUsage
	default:
		return exitFailure
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vaultchat [flags] <prompt>",
		Short: "Stream an OpenAI chat completion using an API key stored in Pangea Vault",
		Long: "vaultchat fetches the OpenAI API key held by a Pangea Vault secret item, then streams " +
			"the chat completion for <prompt> to standard output.",
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runChat,
	}

	config.BindFlags(rootCmd.Flags())
	rootCmd.Flags().BoolP(flagVerbose, "v", false, "Log debug information to stderr")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", config.ErrUsage, err)
	})

	return rootCmd
}

func runChat(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	envFile, err := flags.GetString(config.FlagEnvFile)
	if err != nil {
		return err
	}
	if err := config.LoadDotEnv(envFile, flags.Changed(config.FlagEnvFile)); err != nil {
		return err
	}

	file, err := loadConfigFile(flags)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(flags, args, file)
	if err != nil {
		return err
	}

	verbose, err := flags.GetBool(flagVerbose)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), verbose)
	logger.DebugContext(cmd.Context(), "configuration resolved", slog.Any("config", cfg))

	app, err := wireApp(cfg, cmd.ErrOrStderr(), logger)
	if err != nil {
		return err
	}
	app.showSpinner = app.showSpinner && !verbose

	return app.run(cmd.Context(), cfg, bufio.NewWriter(cmd.OutOrStdout()))
}

func loadConfigFile(flags *pflag.FlagSet) (config.File, error) {
	path, err := flags.GetString(config.FlagConfigFile)
	if err != nil {
		return config.File{}, err
	}

	explicit := flags.Changed(config.FlagConfigFile)
	if !explicit {
		path, err = config.DefaultFilePath()
		if err != nil {
			// No resolvable config directory means there is no default file to read.
			return config.File{}, nil
		}
	}

	return config.LoadFile(path, explicit)
}

func (a *app) run(ctx context.Context, cfg config.Config, out *bufio.Writer) error {
	req := application.ChatRequest{
		VaultItemID: cfg.VaultItemID,
		Model:       cfg.Model,
		Prompt:      cfg.Prompt,
	}

	if !a.showSpinner {
		return a.service.Run(ctx, req, out)
	}

	status := startStatusLine(ctx, a.stderr, "Fetching API key from Pangea Vault...")
	defer status.Stop()

	apiKey, err := a.service.ResolveSecret(ctx, req.VaultItemID)
	if err != nil {
		return err
	}

	status.SetLabel(fmt.Sprintf("Waiting for %s...", req.Model))

	return a.service.Relay(ctx, apiKey, req, &clearOnWrite{out: out, stop: status.Stop})
}
