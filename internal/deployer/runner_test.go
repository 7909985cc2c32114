package deployer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecRunner_MissingBinary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	runner := NewExecRunner(filepath.Join(dir, "sc64deployer"), dir)

	res := runner.Run("list")

	assert.Equal(t, NotStartedCode, res.Code,
		"a binary that cannot start must report the sentinel code, not panic or error")
	assert.Contains(t, res.Stderr, "sc64deployer not found")
	assert.False(t, res.OK())
}
