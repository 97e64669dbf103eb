package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/jproj/internal/version"
)

func TestNewVersionCmd(t *testing.T) {
	c := NewVersionCmd(nil)

	assert.Equal(t, "version", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
}

func TestVersionCmd_Execute(t *testing.T) {
	isolateHome(t)

	res := execute(t, "", "version")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "jproj version "+version.Version)
	assert.Contains(t, res.stdout, "CUE SDK:")
}
