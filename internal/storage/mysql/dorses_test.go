package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"damper-takip/internal/storage"
)

func createTestDorse(t *testing.T, musteri string) int64 {
	t.Helper()

	id, err := testStorage.SaveDorse(context.Background(), &storage.Dorse{Musteri: musteri})
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = testStorage.db.Exec(`DELETE FROM dorses WHERE id = ?`, id)
	})
	return id
}

func createTestSasi(t *testing.T, musteri string) int64 {
	t.Helper()

	id, err := testStorage.SaveSasi(context.Background(), &storage.Sasi{Musteri: musteri})
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = testStorage.db.Exec(`DELETE FROM sasis WHERE id = ?`, id)
	})
	return id
}

func TestLinkSasi(t *testing.T) {
	ctx := context.Background()

	dorseID := createTestDorse(t, "Link Test")
	sasiID := createTestSasi(t, "Stok 1")

	err := testStorage.LinkSasi(ctx, dorseID, sasiID)
	require.NoError(t, err)

	dorse, err := testStorage.GetDorse(ctx, dorseID)
	require.NoError(t, err)
	require.NotNil(t, dorse.SasiID)
	assert.Equal(t, sasiID, *dorse.SasiID)

	sasi, err := testStorage.GetSasi(ctx, sasiID)
	require.NoError(t, err)
	assert.True(t, sasi.IsLinked)

	// Bağlı şasi ikinci bir dorseye verilemez
	otherID := createTestDorse(t, "Link Test 2")
	err = testStorage.LinkSasi(ctx, otherID, sasiID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLinkSasi_DorseYok(t *testing.T) {
	ctx := context.Background()

	sasiID := createTestSasi(t, "Stok 2")

	// Olmayan dorse id ile bağlama şasiyi askıda bırakmamalı
	err := testStorage.LinkSasi(ctx, 999999999, sasiID)
	assert.ErrorIs(t, err, ErrNotFound)

	sasi, err := testStorage.GetSasi(ctx, sasiID)
	require.NoError(t, err)
	assert.False(t, sasi.IsLinked)
}
