package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	cfg := Load()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.ListenAddr)
	assert.NotEmpty(t, cfg.DBPath)
	assert.NotEmpty(t, cfg.AdminPassword)
	assert.NotEmpty(t, cfg.MediaFolder)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("DB_PATH", "/custom/folio.db")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("R2_ACCOUNT_ID", "acct123")
	t.Setenv("CDN_DOMAIN", "cdn.example.com")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "/custom/folio.db", cfg.DBPath)
	assert.Equal(t, "hunter2", cfg.AdminPassword)
	assert.Equal(t, "acct123", cfg.MediaAccountID)
	assert.Equal(t, "cdn.example.com", cfg.CDNDomain)
}
