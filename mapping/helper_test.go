package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// touch writes size zero bytes to dir/rel, creating parent dirs
func touch(t *testing.T, dir, rel string, size int) {
	t.Helper()
	var path = filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
}
