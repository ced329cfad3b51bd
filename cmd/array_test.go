//go:build !rand_noarray

package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalSampleEmpty(t *testing.T) {
	out, err := runCLI(t, "eval", "sample({})")
	require.NoError(t, err)
	assert.Equal(t, "nil\n", out)
}

func TestEvalSampleMany(t *testing.T) {
	out, err := runCLI(t, "eval", "array{1, 2, 3}:sample(3)")
	require.NoError(t, err)
	out = strings.TrimSpace(out)
	require.True(t, strings.HasPrefix(out, "[") && strings.HasSuffix(out, "]"), out)
	assert.ElementsMatch(t, []string{"1", "2", "3"}, strings.Split(strings.Trim(out, "[]"), ", "))
}

func TestRunArrayScript(t *testing.T) {
	path := writeScript(t, `
		local a = array{1, 2, 3}
		a:shuffle()
		assert(#a == 3)
	`)
	_, err := runCLI(t, "run", path)
	require.NoError(t, err)

	path = writeScript(t, `local s = sample({1, 2}, 3)`)
	_, err = runCLI(t, "run", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
}

func TestDocArrayMethods(t *testing.T) {
	out, err := runCLI(t, "doc")
	require.NoError(t, err)
	assert.Contains(t, out, "[array method]")

	out, err = runCLI(t, "doc", "--module", "array")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "module array\n"), out)
}
