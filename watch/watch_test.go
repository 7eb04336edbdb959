package watch

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	prechecktest "github.com/teranos/precheck/internal/testing"
)

const debounce = 100 * time.Millisecond

func TestWatcherDebouncesInputChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := prechecktest.NewProject(t, prechecktest.ProjectOptions{})
	w, err := New(p, debounce)
	require.NoError(t, err)
	defer w.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(p.VerilogPath, []byte(prechecktest.DefaultVerilog), 0o644))
	}

	select {
	case name := <-w.Changes():
		assert.Equal(t, p.VerilogPath, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	select {
	case name := <-w.Changes():
		t.Fatalf("burst produced a second notification for %s", name)
	case <-time.After(4 * debounce):
	}

	require.NoError(t, w.Close())
}

func TestWatcherIgnoresOutputs(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := prechecktest.NewProject(t, prechecktest.ProjectOptions{})
	w, err := New(p, debounce)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(p.Path("klayout_nw_urpm_check.xml"), []byte("<report-database/>"), 0o644))
	require.NoError(t, os.WriteFile(p.Path("klayout_nw_urpm_check.log"), []byte("log"), 0o644))

	select {
	case name := <-w.Changes():
		t.Fatalf("unexpected notification for %s", name)
	case <-time.After(6 * debounce):
	}

	require.NoError(t, w.Close())
	_, open := <-w.Changes()
	assert.False(t, open, "Changes is closed after Close")
	assert.NoError(t, w.Close(), "Close is idempotent")
}

func TestWatcherMissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := prechecktest.NewProject(t, prechecktest.ProjectOptions{})
	require.NoError(t, os.RemoveAll(p.Dir))

	_, err := New(p, debounce)
	assert.Error(t, err)
}
