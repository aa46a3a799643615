package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityCreateLevels(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db, nil, 0)
	ctx := context.Background()

	root, err := svc.Create(ctx, "Food", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, root.Level)
	assert.Nil(t, root.ParentID)

	child, err := svc.Create(ctx, "Meat products", &root.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, child.Level)

	grandchild, err := svc.Create(ctx, "Sausages", &child.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, grandchild.Level)
}

func TestActivityCreateDepthExceeded(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db, nil, 0)
	ctx := context.Background()

	root, err := svc.Create(ctx, "Level 1", nil)
	require.NoError(t, err)
	level2, err := svc.Create(ctx, "Level 2", &root.ID)
	require.NoError(t, err)
	level3, err := svc.Create(ctx, "Level 3", &level2.ID)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Level 4", &level3.ID)
	assert.ErrorIs(t, err, ErrMaxActivityDepth)
}

func TestActivityCreateParentNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db, nil, 0)

	missing := uint(9999)
	_, err := svc.Create(context.Background(), "Orphan", &missing)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestExpandDescendantsLeaf(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db, nil, 0)
	ctx := context.Background()

	leaf, err := svc.Create(ctx, "Leaf", nil)
	require.NoError(t, err)

	ids, err := svc.ExpandDescendants(ctx, leaf.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{leaf.ID}, ids)
}

func TestExpandDescendantsFullTree(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db, nil, 0)
	ctx := context.Background()

	root, _ := svc.Create(ctx, "Food", nil)
	meat, _ := svc.Create(ctx, "Meat", &root.ID)
	dairy, _ := svc.Create(ctx, "Dairy", &root.ID)
	sausages, _ := svc.Create(ctx, "Sausages", &meat.ID)
	// A separate root must not leak into the expansion.
	other, _ := svc.Create(ctx, "Cars", nil)

	ids, err := svc.ExpandDescendants(ctx, root.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{root.ID, meat.ID, dairy.ID, sausages.ID}, ids)
	assert.NotContains(t, ids, other.ID)
}

func TestExpandDescendantsSupersetOfChildren(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db, nil, 0)
	ctx := context.Background()

	root, _ := svc.Create(ctx, "Root", nil)
	childA, _ := svc.Create(ctx, "A", &root.ID)
	childB, _ := svc.Create(ctx, "B", &root.ID)
	_, _ = svc.Create(ctx, "A1", &childA.ID)

	rootSet, err := svc.ExpandDescendants(ctx, root.ID)
	require.NoError(t, err)
	assert.Contains(t, rootSet, root.ID)

	for _, child := range []uint{childA.ID, childB.ID} {
		childSet, err := svc.ExpandDescendants(ctx, child)
		require.NoError(t, err)
		for _, id := range childSet {
			assert.Contains(t, rootSet, id)
		}
	}
}
