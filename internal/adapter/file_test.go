package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ar-fit/internal/logger"
)

func TestFileSink_Put_Dir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	sink := NewFileSink(dir, logger.Nop())

	location, err := sink.Put(context.Background(), "ar-fit-users-data.json", []byte("[]"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ar-fit-users-data.json"), location)

	got, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileSink_Put_Overwrites(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir, logger.Nop())
	ctx := context.Background()

	_, err := sink.Put(ctx, "data.json", []byte(`[{"id":"1"}]`))
	require.NoError(t, err)
	location, err := sink.Put(ctx, "data.json", []byte(`[]`))
	require.NoError(t, err)

	got, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestFileSink_Put_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	sink := NewFilePathSink(path, logger.Nop())

	location, err := sink.Put(context.Background(), "ignored.json", []byte("[]"))
	require.NoError(t, err)
	assert.Equal(t, path, location)
	assert.FileExists(t, path)
}

func TestFileSink_Put_RejectsPathNames(t *testing.T) {
	sink := NewFileSink(t.TempDir(), logger.Nop())

	for _, name := range []string{"", "../escape.json", "a/b.json"} {
		_, err := sink.Put(context.Background(), name, []byte("[]"))
		assert.ErrorIs(t, err, ErrInvalidDestination, "name %q", name)
	}
}
