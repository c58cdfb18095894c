package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	openaiadapter "github.com/bnema/vaultchat/internal/adapters/llm/openai"
	"github.com/bnema/vaultchat/internal/adapters/secrets/pangea"
	"github.com/bnema/vaultchat/internal/application"
	"github.com/bnema/vaultchat/internal/config"
	"github.com/bnema/vaultchat/internal/version"
	"github.com/mattn/go-isatty"
)

const (
	envVaultBaseURL  = "VAULTCHAT_VAULT_BASE_URL"
	envOpenAIBaseURL = "OPENAI_BASE_URL"
)

type app struct {
	service     *application.Service
	stderr      io.Writer
	showSpinner bool
}

func wireApp(cfg config.Config, stderr io.Writer, logger *slog.Logger) (*app, error) {
	storeOpts := []pangea.Option{
		pangea.WithLogger(logger),
		pangea.WithUserAgent("vaultchat/" + version.Version),
	}
	if baseURL := envOrDefault(envVaultBaseURL, ""); baseURL != "" {
		storeOpts = append(storeOpts, pangea.WithBaseURL(baseURL))
	}

	store, err := pangea.NewStore(cfg.VaultToken.Reveal(), cfg.PangeaDomain, storeOpts...)
	if err != nil {
		return nil, fmt.Errorf("wire vault secret store: %w", err)
	}

	completionOpts := []openaiadapter.Option{openaiadapter.WithLogger(logger)}
	if baseURL := envOrDefault(envOpenAIBaseURL, ""); baseURL != "" {
		completionOpts = append(completionOpts, openaiadapter.WithBaseURL(baseURL))
	}

	return &app{
		service:     application.NewService(store, openaiadapter.Factory(completionOpts...), logger),
		stderr:      stderr,
		showSpinner: isTerminal(stderr),
	}, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
