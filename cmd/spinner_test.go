package cmd

import (
	"bufio"
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lockedBuffer lets the bubbletea renderer and the test share one buffer.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStatusModelSwitchesLabel(t *testing.T) {
	t.Parallel()

	model := newStatusModel("Fetching API key from Pangea Vault...")
	assert.Contains(t, model.View(), "Fetching API key from Pangea Vault...")

	updated, cmd := model.Update(statusLabelMsg("Waiting for gpt-4o-mini..."))
	assert.Nil(t, cmd)
	view := updated.(statusModel).View()
	assert.Contains(t, view, "Waiting for gpt-4o-mini...")
	assert.NotContains(t, view, "Pangea Vault")
}

func TestStatusModelStopClearsView(t *testing.T) {
	t.Parallel()

	model := newStatusModel("working")
	updated, cmd := model.Update(statusStopMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	final := updated.(statusModel)
	assert.True(t, final.stopped)
	assert.Empty(t, final.View())
}

func TestStatusModelAdvancesOnTick(t *testing.T) {
	t.Parallel()

	model := newStatusModel("working")
	updated, cmd := model.Update(model.spinner.Tick())
	assert.NotNil(t, cmd)
	assert.False(t, updated.(statusModel).stopped)

	_, cmd = model.Update(spinner.TickMsg{ID: model.spinner.ID() + 1000})
	assert.Nil(t, cmd, "ticks from other spinners are ignored")
}

func TestStatusLineStopIsIdempotent(t *testing.T) {
	t.Parallel()

	var out lockedBuffer
	status := startStatusLine(context.Background(), &out, "working")
	status.SetLabel("still working")
	status.Stop()
	status.Stop()
}

func TestStatusLineStopAfterCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var out lockedBuffer
	status := startStatusLine(ctx, &out, "working")
	cancel()
	status.Stop()
}

func TestClearOnWriteStopsBeforeFirstWrite(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	buffered := bufio.NewWriter(&stdout)
	stops := 0
	w := &clearOnWrite{out: buffered, stop: func() {
		stops++
		assert.Zero(t, buffered.Buffered(), "status line cleared before any output")
	}}

	require.NoError(t, w.Flush())
	assert.Zero(t, stops, "flushing without output keeps the status line")

	_, err := w.Write([]byte("Hi"))
	require.NoError(t, err)
	_, err = w.Write([]byte(" there"))
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	assert.Equal(t, 1, stops)
	assert.Equal(t, "Hi there", stdout.String())
}
