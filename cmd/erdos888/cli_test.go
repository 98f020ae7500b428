package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logger = zap.NewNop()
	color.NoColor = true
	edgeSample, timeLimit, listEdges, dedupEdges, configPath = -1, 0, false, false, ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTableCmd(t *testing.T) {
	out, err := run(t, "table", "15", "30")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "f_sf(n)")
	assert.Equal(t, "    15 |     11 |      10 |   0.6667 |       3 |    true", lines[2])
}

func TestTableCmd_BadBound(t *testing.T) {
	_, err := run(t, "table", "0")
	assert.Error(t, err)

	_, err = run(t, "table", "x")
	assert.Error(t, err)
}

func TestVerifyCmd(t *testing.T) {
	out, err := run(t, "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "Can fix K via scaling: true")
	assert.Contains(t, out, "Fixed set: [3 5 126 210]")
}

func TestFSfCmd(t *testing.T) {
	out, err := run(t, "fsf", "21", "--edges", "--dedup")
	require.NoError(t, err)
	assert.Contains(t, out, "f_sf(n) = 13")
	assert.Contains(t, out, "cover   = [1]")
	assert.Contains(t, out, "[1 6 10 15]\n[1 6 14 21]\n")
	assert.Equal(t, 1, strings.Count(out, "[1 6 10 15]"))
}

func TestCheckCmd(t *testing.T) {
	out, err := run(t, "check", "3", "5", "14", "210")
	require.NoError(t, err)
	assert.Contains(t, out, "admissible: false")
	assert.Contains(t, out, "violation:  [3 5 14 210] (repeated=false)")

	out, err = run(t, "check", "3", "5", "126", "210")
	require.NoError(t, err)
	assert.Contains(t, out, "admissible: true")
}

func TestFixCmd(t *testing.T) {
	out, err := run(t, "fix", "210", "3", "5", "14", "210")
	require.NoError(t, err)
	assert.Contains(t, out, "fixable: true")
	assert.Contains(t, out, "fixed:   [3 5 126 210]")

	_, err = run(t, "fix", "210", "3", "5")
	assert.Error(t, err)
}
