package vostest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeniedFs(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/secret", 0755))
	require.NoError(t, base.MkdirAll("/public", 0755))

	denied := NewDeniedFs(base, "/secret/")

	_, err := denied.Open("/secret")
	assert.ErrorIs(t, err, fs.ErrPermission)
	_, err = afero.ReadDir(denied, "/secret")
	assert.ErrorIs(t, err, fs.ErrPermission)
	_, err = denied.Stat("/secret")
	assert.ErrorIs(t, err, fs.ErrPermission)

	_, err = afero.ReadDir(denied, "/public")
	assert.NoError(t, err)
}

func TestFaultFs_OnOpen(t *testing.T) {
	boom := errors.New("boom")
	var opened []string
	faulty := &FaultFs{
		Fs:     afero.NewMemMapFs(),
		Faults: map[string]error{"/broken": boom},
		OnOpen: func(name string) { opened = append(opened, name) },
	}

	_, err := faulty.Open("/broken")
	assert.ErrorIs(t, err, boom)

	var pathErr *fs.PathError
	if assert.ErrorAs(t, err, &pathErr) {
		assert.Equal(t, "open", pathErr.Op)
		assert.Equal(t, "/broken", pathErr.Path)
	}

	assert.Equal(t, []string{"/broken"}, opened)
}
