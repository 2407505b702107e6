package name_test

import (
	"testing"

	"github.com/jcpaschoal/admindashboard/business/types/name"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	n, err := name.Parse("  Jane Smith \n")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", n.String())

	_, err = name.Parse(" \t ")
	assert.ErrorIs(t, err, name.ErrBlank)
}
