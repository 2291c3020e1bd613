package archive_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenttrust/agenttrust/pkg/envelope"
	"github.com/agenttrust/agenttrust/pkg/trust_server/archive"
)

func TestBlobArchiverPutGet(t *testing.T) {
	ctx := context.Background()

	archiver, err := archive.OpenBlobArchiver(ctx, "mem://")
	require.NoError(t, err)
	defer archiver.Close()

	data := []byte(`{"id": "event-1"}`)
	locator, err := archiver.Put(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, envelope.SHA512(data), locator)

	stored, err := archiver.Get(ctx, locator)
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestBlobArchiverPutIsIdempotent(t *testing.T) {
	ctx := context.Background()

	archiver, err := archive.OpenBlobArchiver(ctx, "mem://")
	require.NoError(t, err)
	defer archiver.Close()

	data := []byte("same bytes")
	first, err := archiver.Put(ctx, data)
	require.NoError(t, err)
	second, err := archiver.Put(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := archiver.Put(ctx, []byte("different bytes"))
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestBlobArchiverGetUnknownLocator(t *testing.T) {
	ctx := context.Background()

	archiver, err := archive.OpenBlobArchiver(ctx, "mem://")
	require.NoError(t, err)
	defer archiver.Close()

	_, err = archiver.Get(ctx, envelope.SHA512([]byte("never stored")))
	assert.Error(t, err)
}
