package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with a config path inside a temp dir.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	return executeWithConfig(t, cfgPath, args...)
}

func executeWithConfig(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "bough test\n", out)
}

func TestRenderWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	out, err := execute(t, "render", "--out", path, "--width", "200", "--height", "150")
	require.NoError(t, err)
	assert.Contains(t, out, "200x150")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())

	// The root background is opaque everywhere outside the panel.
	_, _, _, a := img.At(2, 2).RGBA()
	assert.Equal(t, uint32(0xffff), a)
}

func TestInspectTree(t *testing.T) {
	out, err := execute(t, "inspect")
	require.NoError(t, err)
	for _, want := range []string{"root#root", "panel#panel", "buttons#buttons", "button6#button6", "input#input", `"bough demo"`} {
		assert.Contains(t, out, want)
	}
}

func TestInspectHit(t *testing.T) {
	tests := []struct {
		name string
		at   string
		want string
	}{
		// panel origin (20,20), title is the first stack row.
		{name: "title", at: "30,30", want: "hits title#title at local (10, 10)"},
		// the grid follows the 40px title and 10px padding; button1 spans 200x60.
		{name: "button", at: "120,100", want: "hits button1#button1 at local (100, 30)"},
		{name: "margin", at: "5,5", want: "hits root#root at local (5, 5)"},
		{name: "outside", at: "-5,-5", want: "misses the tree"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "inspect", "--at="+tt.at)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestInspectBadPoint(t *testing.T) {
	_, err := execute(t, "inspect", "--at", "nope")
	assert.Error(t, err)
}

func TestReplay(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "script.json")
	require.NoError(t, os.WriteFile(script, []byte(`{"steps": [
		{"action": "click", "x": 120, "y": 100},
		{"action": "snapshot", "label": "clicked"}
	]}`), 0o644))
	snapDir := filepath.Join(dir, "snaps")

	out, err := execute(t, "replay", script, "--out-dir", snapDir)
	require.NoError(t, err)
	assert.Contains(t, out, "status: clicked button1 at 100,30")
	assert.Contains(t, out, "clicks: button1=1")

	entries, err := os.ReadDir(snapDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "clicked")
}

func TestReplayRejectsBadScript(t *testing.T) {
	script := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(script, []byte(`{"steps": [{"action": "jump"}]}`), 0o644))

	_, err := execute(t, "replay", script)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")
}

func TestConfigInitAndShow(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bough", "config.toml")

	out, err := executeWithConfig(t, cfgPath, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, cfgPath)
	assert.FileExists(t, cfgPath)

	_, err = executeWithConfig(t, cfgPath, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = executeWithConfig(t, cfgPath, "config", "init", "--force")
	require.NoError(t, err)

	out, err = executeWithConfig(t, cfgPath, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[driver]")
	assert.Contains(t, out, "tick_interval_ms = 100")
}

func TestParsePoint(t *testing.T) {
	x, y, err := parsePoint(" 12.5, 7 ")
	require.NoError(t, err)
	assert.Equal(t, 12.5, x)
	assert.Equal(t, 7.0, y)

	_, _, err = parsePoint("12")
	assert.Error(t, err)
	_, _, err = parsePoint("a,1")
	assert.Error(t, err)
}
