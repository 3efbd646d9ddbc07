package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/hotel-dashboard-api/internal/domain/dashboard"
	"github.com/jhoicas/hotel-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/hotel-dashboard-api/internal/infrastructure/postgres"
)

var exportedAt = time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

func guestStatements(t *testing.T, names ...string) []postgres.Statement {
	t.Helper()
	snap := dashboard.Snapshot{Hotels: []entity.Hotel{{ID: "h1", Name: "Café Real", IsActive: true}}}
	for i, n := range names {
		snap.Guests = append(snap.Guests, entity.Guest{ID: string(rune('a' + i)), HotelID: "h1", FullName: n})
	}
	stmts, skipped := postgres.SnapshotStatements(snap)
	require.Empty(t, skipped)
	return stmts
}

func TestWriteSQL_Latin1ReemplazaCaracteresSinEquivalente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.sql")

	replaced, err := writeSQL(path, true, guestStatements(t, "王 小明", "José Muñoz"), exportedAt)
	require.NoError(t, err)
	assert.Equal(t, 3, replaced)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	require.NoError(t, err)

	script := string(text)
	assert.Contains(t, script, "SET client_encoding = 'LATIN1';")
	assert.Contains(t, script, "'? ??'")
	assert.Contains(t, script, "'José Muñoz'")
	assert.Contains(t, script, "'Café Real'")
	assert.True(t, strings.HasSuffix(script, "COMMIT;\n"), "el script termina con COMMIT")
}

func TestWriteSQL_UTF8SinCambios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.sql")

	replaced, err := writeSQL(path, false, guestStatements(t, "王 小明"), exportedAt)
	require.NoError(t, err)
	assert.Zero(t, replaced)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "'王 小明'")
	assert.Contains(t, string(raw), "2026-10-14T08:00:00Z")
}

func TestWriteSQL_ErrorDeRenderNoCreaArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.sql")
	stmts := append(guestStatements(t, "Ana"), postgres.Statement{SQL: "SELECT $1", Args: []any{3.5}})

	_, err := writeSQL(path, true, stmts, exportedAt)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no debe quedar un archivo a medias")
}
