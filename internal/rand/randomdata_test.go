package rand

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandLetterBytes(t *testing.T) {
	name := randLetterBytes(20)
	require.Len(t, name, 20)
	assert.Regexp(t, `^[a-z0-9]+$`, string(name))
}

func TestTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	tree, err := Tree(fs, "/root", 12, 3, 64)
	require.NoError(t, err)
	require.Len(t, tree, 12)

	for rel, content := range tree {
		b, err := afero.ReadFile(fs, filepath.Join("/root", rel))
		require.NoError(t, err)
		assert.Equal(t, content, b)
	}
}

func benchmarkRandBytes(b *testing.B, size int) {
	for n := 0; n < b.N; n++ {
		_ = randBytes(size)
	}
}

func BenchmarkRandBytes20(b *testing.B)   { benchmarkRandBytes(b, 20) }
func BenchmarkRandBytes1000(b *testing.B) { benchmarkRandBytes(b, 1000) }
