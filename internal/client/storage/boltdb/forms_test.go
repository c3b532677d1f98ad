package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/formsync/internal/client/storage"
	"github.com/iudanet/formsync/internal/models"
)

func testFields(t *testing.T) models.FieldList {
	t.Helper()
	name, err := models.NewTextField("name", "Name", models.FieldTypeText)
	require.NoError(t, err)
	color, err := models.NewChoiceField("color", "Favourite colour", models.FieldTypeRadio, []string{"red", "green"})
	require.NoError(t, err)
	score, err := models.NewNumericField("score", "Score", models.FieldTypeRating, nil, nil)
	require.NoError(t, err)
	return models.FieldList{name, color, score}
}

func TestStorage_Snapshots(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.GetSnapshot(ctx, "survey")
	assert.ErrorIs(t, err, storage.ErrFormNotFound)

	snap := &storage.FormSnapshot{
		FormID:  "survey",
		Name:    "Customer survey",
		Fields:  testFields(t),
		SavedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.SaveSnapshot(ctx, snap))

	got, err := store.GetSnapshot(ctx, "survey")
	require.NoError(t, err)
	assert.Equal(t, snap.Name, got.Name)
	assert.True(t, snap.SavedAt.Equal(got.SavedAt))
	assert.Equal(t, snap.Fields, got.Fields)
	assert.Equal(t, []string{"red", "green"}, got.Fields[1].Options())

	// Перезапись
	snap.Fields = snap.Fields[:1]
	require.NoError(t, store.SaveSnapshot(ctx, snap))
	got, err = store.GetSnapshot(ctx, "survey")
	require.NoError(t, err)
	assert.Len(t, got.Fields, 1)

	require.NoError(t, store.SaveSnapshot(ctx, &storage.FormSnapshot{FormID: "alpha", Fields: testFields(t)}))
	all, err := store.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].FormID)
	assert.Equal(t, "survey", all[1].FormID)
}

func TestStorage_SaveSnapshot_Invalid(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	assert.Error(t, store.SaveSnapshot(ctx, &storage.FormSnapshot{Fields: testFields(t)}))

	fields := testFields(t)
	dup := append(fields, fields[0])
	err := store.SaveSnapshot(ctx, &storage.FormSnapshot{FormID: "f", Fields: dup})
	assert.ErrorIs(t, err, models.ErrDuplicateFieldKey)
}

func TestStorage_StoreRefs(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.GetStoreRef(ctx, "survey")
	assert.ErrorIs(t, err, storage.ErrStoreRefNotFound)

	ref := models.StoreReference{ID: "1AbCdEfGhIjK", Tab: "Form Responses 1"}
	require.NoError(t, store.SaveStoreRef(ctx, "survey", ref))

	got, err := store.GetStoreRef(ctx, "survey")
	require.NoError(t, err)
	assert.Equal(t, ref, got)

	err = store.SaveStoreRef(ctx, "survey", models.StoreReference{})
	assert.ErrorIs(t, err, models.ErrInvalidReference)
}

func TestStorage_Forms_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	dropBucket(t, store, bucketForms)
	dropBucket(t, store, bucketStores)

	err := store.SaveSnapshot(ctx, &storage.FormSnapshot{FormID: "f"})
	assert.ErrorContains(t, err, "forms bucket not found")

	_, err = store.ListSnapshots(ctx)
	assert.ErrorContains(t, err, "forms bucket not found")

	_, err = store.GetStoreRef(ctx, "f")
	assert.ErrorContains(t, err, "stores bucket not found")
}
