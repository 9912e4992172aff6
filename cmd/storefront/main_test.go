package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	logger = zap.NewNop()
	t.Cleanup(func() {
		logger = nil
		catalogCategory = "All"
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCatalogCmd(t *testing.T) {
	out, err := runCLI(t, "catalog", "--config", "testdata/none.yaml")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 13)
	assert.Contains(t, lines[0], "CATEGORY")
	assert.Contains(t, out, "USD ")
}

func TestCatalogCmd_Category(t *testing.T) {
	out, err := runCLI(t, "catalog", "--config", "testdata/none.yaml", "--category", "Apparel")
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSpace(out), "\n")[1:] {
		assert.Contains(t, line, "Apparel")
	}
}

func TestCatalogCmd_UnknownCategory(t *testing.T) {
	_, err := runCLI(t, "catalog", "--config", "testdata/none.yaml", "--category", "Toys")
	require.Error(t, err)
}
