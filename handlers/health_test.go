package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	env := setupTestEnv(t)

	c, rec := setupEcho(http.MethodGet, "/healthz", "", env.cfg)
	require.NoError(t, env.handler.Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"ok"`)

	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	sqlDB.Close()

	c, rec = setupEcho(http.MethodGet, "/healthz", "", env.cfg)
	require.NoError(t, env.handler.Health(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
}
