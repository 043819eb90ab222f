package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/lydio/internal/cli"
	"github.com/arthur-debert/lydio/pkg/errors"
)

var siteDef = filepath.Join("..", "..", "pkg", "definition", "testdata", "site.yaml")

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("LYDIO_CONFIG", "")
	t.Setenv("NO_COLOR", "1")
	return dir
}

func expectedSite(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "pkg", "definition", "testdata", "site.css"))
	require.NoError(t, err)
	return strings.TrimSpace(string(data))
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBuildCmd_Stdout(t *testing.T) {
	isolate(t)

	stdout, _, err := run(t, "build", siteDef)
	require.NoError(t, err)
	assert.Equal(t, expectedSite(t)+"\n", stdout)
}

func TestBuildCmd_ExplicitTextFormat(t *testing.T) {
	isolate(t)

	stdout, _, err := run(t, "build", "--format", "text", siteDef)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "body {\n"))
}

func TestBuildCmd_InvalidFormat(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "build", "--format", "pdf", siteDef)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestBuildCmd_OutputFile(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "dist", "site.css")

	stdout, stderr, err := run(t, "build", siteDef, "-o", target)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "5 rules")
	assert.Contains(t, stderr, target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, expectedSite(t)+"\n", string(data))
}

func TestBuildCmd_OutputFileNoOverwrite(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "site.css")
	require.NoError(t, os.WriteFile(target, []byte("keep"), 0644))

	cfgPath := filepath.Join(dir, "lydio.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[output]\noverwrite = false\n"), 0644))

	_, _, err := run(t, "--config", cfgPath, "build", siteDef, "-o", target)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestBuildCmd_ConfigDisablesNewline(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "lydio.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[output]\nnewline = false\n"), 0644))

	stdout, _, err := run(t, "--config", cfgPath, "build", siteDef)
	require.NoError(t, err)
	assert.Equal(t, expectedSite(t), stdout)
}

func TestBuildCmd_MissingDefinition(t *testing.T) {
	dir := isolate(t)

	_, _, err := run(t, "build", filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
}

func TestBuildCmd_MissingConfig(t *testing.T) {
	dir := isolate(t)

	_, _, err := run(t, "--config", filepath.Join(dir, "missing.toml"), "build", siteDef)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestBuildCmd_RequiresOneArg(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "build")
	assert.Error(t, err)
}

func TestTreeCmd(t *testing.T) {
	isolate(t)

	stdout, _, err := run(t, "tree", siteDef)
	require.NoError(t, err)
	assert.Contains(t, stdout, "body (3 declarations)")
	assert.Contains(t, stdout, "body a (1 declaration)")
	assert.Contains(t, stdout, ".l-clamp-600 (3 declarations)")
	assert.Less(t, strings.Index(stdout, "body a"), strings.Index(stdout, ".l-clamp-800"))
}

func TestVersionCmd(t *testing.T) {
	isolate(t)

	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "lydio version dev")
}

func TestRootCmd_NoCommand(t *testing.T) {
	isolate(t)

	_, _, err := run(t)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
