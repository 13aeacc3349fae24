package vostest

import (
	"testing"

	"github.com/josephlewis42/hostreport/core/vos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeterministicOS(t *testing.T) {
	o := NewDeterministicOS()

	wd, err := o.Getwd()
	require.NoError(t, err)
	assert.Equal(t, HomeDir, wd)
	assert.Equal(t, Username, o.Getenv("USER"))
	assert.Equal(t, ReferenceTime, o.Now())
	assert.Equal(t, RuntimeVersion, o.RuntimeVersion())
	assert.False(t, o.IsTerminal())

	info, err := o.Stat(HomeDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCmd(t *testing.T) {
	cmd := Command(func(v vos.VOS) int {
		return len(v.Args())
	}, "prog", "a", "b")

	_, err := cmd.CombinedOutput()
	require.NoError(t, err)
	assert.Equal(t, 3, cmd.ExitStatus)
}
