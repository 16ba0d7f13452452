package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxrxiaoha/checkInRecord/store"
)

func TestClientSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkin.db")

	c, err := store.NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	data, err := c.LoadRecords()
	require.NoError(t, err)
	assert.Empty(t, data)

	payload := []byte(`[{"id":"a"}]`)

	require.NoError(t, c.SaveRecords(payload))

	data, err = c.LoadRecords()
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestClientCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "checkin.db")

	c, err := store.NewClient(path)
	require.NoError(t, err)

	require.NoError(t, c.Close())
}
