package logger

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, path string, lines ...string) {
	t.Helper()
	data := strings.Join(lines, "\n") + "\n"
	if strings.HasSuffix(path, ".gz") {
		f, err := os.Create(path)
		require.NoError(t, err)
		gz := gzip.NewWriter(f)
		_, err = gz.Write([]byte(data))
		require.NoError(t, err)
		require.NoError(t, gz.Close())
		require.NoError(t, f.Close())
		return
	}
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func fixture(t *testing.T) string {
	dir := t.TempDir()
	writeLog(t, filepath.Join(dir, "app-2024-05-01T23-00-00.000.log.gz"),
		`{"time":"2024-05-01T10:00:00.000+0300","level":"info","message":"старт"}`,
		`{"time":"2024-05-01T11:00:00.000+0300","level":"error","message":"сбой БД"}`,
	)
	writeLog(t, filepath.Join(dir, FileName),
		`{"time":"2024-05-02T09:00:00.000+0300","level":"info","message":"комментарий создан"}`,
		`not json`,
		`{"time":"2024-05-02T09:30:00.000+0300","level":"warn","message":"лайк не засчитан"}`,
		`{"time":"2024-05-02T10:00:00.000+0300","level":"info","message":"комментарий создан"}`,
	)
	writeLog(t, filepath.Join(dir, "other.txt"), "ignored")
	return dir
}

func TestDays(t *testing.T) {
	days, err := Days(fixture(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-01", "2024-05-02"}, days)
}

func TestRead_Filters(t *testing.T) {
	dir := fixture(t)

	items, _, err := Read(dir, Filter{Day: "2024-05-01", Levels: map[string]bool{"error": true}})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, string(items[0]), "сбой БД")

	items, _, err = Read(dir, Filter{Day: "2024-05-02", Query: "КОММЕНТАРИЙ"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	hour := 9
	items, _, err = Read(dir, Filter{Day: "2024-05-02", Hour: &hour})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestRead_Pagination(t *testing.T) {
	dir := fixture(t)

	page1, next, err := Read(dir, Filter{Day: "2024-05-02", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page1, 2)
	assert.Equal(t, 2, next)

	page2, next, err := Read(dir, Filter{Day: "2024-05-02", Limit: 2, Cursor: next})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, 3, next)
	assert.Contains(t, string(page2[0]), "10:00:00")
}

func TestRead_NoDay(t *testing.T) {
	_, _, err := Read(fixture(t), Filter{Day: "2023-01-01"})
	assert.ErrorIs(t, err, ErrNoLogs)
	assert.True(t, ValidDay("2023-01-01"))
	assert.False(t, ValidDay("01.01.2023"))
}
