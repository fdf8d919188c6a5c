package concat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteGroupsWritesHeadersAndContent(t *testing.T) {
	root := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	aJS := writeFixture(t, root, "a.js", "console.log('a')\n")
	bCSS := writeFixture(t, root, "sub/b.css", "body {}\n")

	groups := [][]string{{aJS}, {bCSS}}
	require.NoError(t, WriteGroups(groups, root, outDir, zap.NewNop()))

	first, err := os.ReadFile(filepath.Join(outDir, "concatenated_part_1.txt"))
	require.NoError(t, err)
	require.Equal(t, "// File: a.js\nconsole.log('a')\n\n\n", string(first))

	second, err := os.ReadFile(filepath.Join(outDir, "concatenated_part_2.txt"))
	require.NoError(t, err)
	require.Equal(t, "// File: sub/b.css\nbody {}\n\n\n", string(second))
}

func TestWriteGroupsCreatesEmptyFilesForEmptyGroups(t *testing.T) {
	root := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	groups := [][]string{nil, nil, nil}
	require.NoError(t, WriteGroups(groups, root, outDir, zap.NewNop()))

	for i := 1; i <= 3; i++ {
		info, err := os.Stat(filepath.Join(outDir, OutputFileName(i)))
		require.NoError(t, err)
		require.Zero(t, info.Size())
	}
}

func TestWriteGroupsSkipsUnreadableMember(t *testing.T) {
	root := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	kept := writeFixture(t, root, "kept.js", "kept\n")
	gone := filepath.Join(root, "gone.js")

	require.NoError(t, WriteGroups([][]string{{gone, kept}}, root, outDir, zap.NewNop()))

	data, err := os.ReadFile(filepath.Join(outDir, "concatenated_part_1.txt"))
	require.NoError(t, err)
	require.Equal(t, "// File: kept.js\nkept\n\n\n", string(data))
}

func TestWriteGroupsCreatesOutputDirectory(t *testing.T) {
	root := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "nested", "deeper", "out")

	require.NoError(t, WriteGroups([][]string{nil}, root, outDir, zap.NewNop()))

	_, err := os.Stat(filepath.Join(outDir, "concatenated_part_1.txt"))
	require.NoError(t, err)
}

func TestWriteGroupsUnwritableOutputDirectory(t *testing.T) {
	root := t.TempDir()
	blocked := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("not a directory"), 0o644))

	err := WriteGroups([][]string{nil}, root, filepath.Join(blocked, "out"), zap.NewNop())
	require.Error(t, err)
}
