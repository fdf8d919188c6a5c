package cmd

import (
	"bytes"
	"testing"

	"splitcat/pkg/version"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestVersionCmd(t *testing.T) {
	out := &bytes.Buffer{}
	root := NewRootCmd(zap.NewNop())
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "splitcat version")
	require.Contains(t, out.String(), version.Get().Version)
}

func TestVersionCmdShort(t *testing.T) {
	out := &bytes.Buffer{}
	root := NewRootCmd(zap.NewNop())
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"version", "--short"})

	require.NoError(t, root.Execute())
	require.Equal(t, version.Get().Version+"\n", out.String())
}
