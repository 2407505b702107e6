package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteMatch(t *testing.T) {
	rt := newRoute("POST", "/v1/customers/{id}/activity", nil)

	values, ok := rt.match("POST", "/v1/customers/3f1c/activity")
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"id": "3f1c"}, values)

	_, ok = rt.match("POST", "/v1/customers/3f1c/activities")
	assert.False(t, ok)

	_, ok = rt.match("GET", "/v1/customers/3f1c/activity")
	assert.False(t, ok)
}

func TestRouteLiteralOnly(t *testing.T) {
	rt := newRoute("GET", "/v1/analytics", nil)

	values, ok := rt.match("GET", "/v1/analytics")
	assert.True(t, ok)
	assert.Nil(t, values)
}

func TestRouteInvalidPatterns(t *testing.T) {
	patterns := []string{
		"/v1//customers",
		"/v1/customers/{}",
		"/v1/customers/{id}/{id}",
		"/v1/customers/id-{id}",
	}

	for _, p := range patterns {
		assert.Panics(t, func() { newRoute("GET", p, nil) }, p)
	}
}
