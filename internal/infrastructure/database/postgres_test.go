package database

import (
	"io/fs"
	"testing"

	"practice-manager/config"
	"practice-manager/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := config.DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "practice", SSLMode: "require"}

	assert.Equal(t, "host=db user=u password=p dbname=practice port=5432 sslmode=require TimeZone=America/Sao_Paulo", DSN(cfg, "America/Sao_Paulo"))
	assert.Contains(t, DSN(cfg, ""), "TimeZone=UTC")
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrations.FS, "*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrations.FS, "*.down.sql")
	require.NoError(t, err)

	assert.Len(t, ups, 4)
	assert.Len(t, downs, len(ups))
}
