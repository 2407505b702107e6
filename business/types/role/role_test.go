package role_test

import (
	"testing"

	"github.com/jcpaschoal/admindashboard/business/types/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, v := range []string{"OWNER", "MANAGER", "STAFF"} {
		r, err := role.Parse(v)
		require.NoError(t, err)
		assert.Equal(t, v, r.String())
	}

	for _, v := range []string{"", "owner", "ADMIN"} {
		_, err := role.Parse(v)
		assert.Error(t, err, v)
	}
}

func TestIn(t *testing.T) {
	assert.True(t, role.Manager.In(role.Owner, role.Manager))
	assert.False(t, role.Staff.In(role.Owner, role.Manager))
	assert.False(t, role.Owner.In())
	assert.True(t, role.Role{}.IsZero())
}
