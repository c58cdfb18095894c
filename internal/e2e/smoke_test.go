package e2e

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	binaryPath := buildBinary(t)
	vaultURL, _ := fakeVault(t, "secret")
	openaiURL, openaiCalls := fakeOpenAI(t, "Hi", " there", "", "!")

	stdout, stderr, code := runVaultchat(t, binaryPath,
		[]string{"PANGEA_VAULT_TOKEN=pts_token", "VAULTCHAT_VAULT_BASE_URL=" + vaultURL, "OPENAI_BASE_URL=" + openaiURL},
		"--vault-item-id", "abc123", "--model", "gpt-4o-mini", "Hello",
	)
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Equal(t, "Hi there!\n", stdout)
	assert.Equal(t, int32(1), atomic.LoadInt32(openaiCalls))
}

func TestSmokeFolderItemExitsNonZero(t *testing.T) {
	binaryPath := buildBinary(t)
	vaultURL, _ := fakeVault(t, "folder")
	openaiURL, openaiCalls := fakeOpenAI(t, "never")

	stdout, stderr, code := runVaultchat(t, binaryPath,
		[]string{"PANGEA_VAULT_TOKEN=pts_token", "VAULTCHAT_VAULT_BASE_URL=" + vaultURL, "OPENAI_BASE_URL=" + openaiURL},
		"--vault-item-id", "abc123", "Hello",
	)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "vaultchat: "), "stderr: %q", stderr)
	assert.Contains(t, stderr, "not a secret")
	assert.Equal(t, 1, strings.Count(stderr, "not a secret"), "error printed once")
	assert.Equal(t, int32(0), atomic.LoadInt32(openaiCalls))
}

func TestSmokeMissingTokenIsUsageError(t *testing.T) {
	binaryPath := buildBinary(t)
	vaultURL, vaultCalls := fakeVault(t, "secret")

	stdout, stderr, code := runVaultchat(t, binaryPath,
		[]string{"VAULTCHAT_VAULT_BASE_URL=" + vaultURL},
		"--vault-item-id", "abc123", "Hello",
	)
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, "vaultchat: "), "stderr: %q", stderr)
	assert.Contains(t, stderr, "--vault-token")
	assert.NotContains(t, stderr, "Error:")
	assert.Equal(t, int32(0), atomic.LoadInt32(vaultCalls))
}

func TestSmokeUnknownFlagIsUsageError(t *testing.T) {
	binaryPath := buildBinary(t)

	stdout, stderr, code := runVaultchat(t, binaryPath, nil, "--bogus", "Hello")
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Equal(t, 1, strings.Count(stderr, "vaultchat: "), "stderr: %q", stderr)
	assert.Contains(t, stderr, "bogus")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "vaultchat-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/vaultchat")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build vaultchat binary: %s", string(output))
	return binaryPath
}

// runVaultchat runs the binary from an empty directory with a scrubbed
// environment so no .env, config file or token leaks in from the host.
func runVaultchat(t *testing.T, binaryPath string, env []string, args ...string) (string, string, int) {
	t.Helper()

	home := t.TempDir()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = home
	cmd.Env = append([]string{
		"HOME=" + home,
		"XDG_CONFIG_HOME=" + filepath.Join(home, ".config"),
		"PATH=" + os.Getenv("PATH"),
	}, env...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		require.True(t, errors.As(err, &exitErr), "run vaultchat: %v", err)
		code = exitErr.ExitCode()
	}

	return stdout.String(), stderr.String(), code
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func fakeVault(t *testing.T, itemType string) (string, *int32) {
	t.Helper()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = fmt.Fprintf(w, `{"request_id":"prq_1","status":"Success","result":{"items":[{"id":"abc123","type":%q,"item_versions":[{"version":1,"secret":"sk-test-123"}]}]}}`, itemType)
	}))
	t.Cleanup(server.Close)
	return server.URL, &calls
}

func fakeOpenAI(t *testing.T, fragments ...string) (string, *int32) {
	t.Helper()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "text/event-stream")
		for _, fragment := range fragments {
			_, _ = fmt.Fprintf(w, `data: {"choices":[{"index":0,"delta":{"content":%q}}]}`+"\n\n", fragment)
		}
		_, _ = fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	t.Cleanup(server.Close)
	return server.URL + "/v1", &calls
}
