package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffIDsDisjointSets(t *testing.T) {
	toAdd, toRemove := diffIDs([]uint{1, 2}, []uint{3, 4})

	assert.ElementsMatch(t, []uint{3, 4}, toAdd)
	assert.ElementsMatch(t, []uint{1, 2}, toRemove)
}

func TestDiffIDsOverlap(t *testing.T) {
	toAdd, toRemove := diffIDs([]uint{1, 2, 3}, []uint{2, 3, 4})

	assert.Equal(t, []uint{4}, toAdd)
	assert.Equal(t, []uint{1}, toRemove)
}

func TestDiffIDsIdenticalMembershipIsNoop(t *testing.T) {
	toAdd, toRemove := diffIDs([]uint{5, 6}, []uint{6, 5})

	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)
}

func TestDiffIDsEmptyDesiredClearsMembership(t *testing.T) {
	toAdd, toRemove := diffIDs([]uint{7, 8}, nil)

	assert.Empty(t, toAdd)
	assert.ElementsMatch(t, []uint{7, 8}, toRemove)
}

func TestDiffIDsEmptyCurrentAddsEverything(t *testing.T) {
	toAdd, toRemove := diffIDs(nil, []uint{1, 2, 3})

	assert.Equal(t, []uint{1, 2, 3}, toAdd)
	assert.Empty(t, toRemove)
}

func TestDiffIDsCollapsesDuplicateDesiredIDs(t *testing.T) {
	toAdd, toRemove := diffIDs([]uint{1}, []uint{2, 2, 1, 2})

	assert.Equal(t, []uint{2}, toAdd)
	assert.Empty(t, toRemove)
}
