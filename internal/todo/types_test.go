package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleItems() []Item {
	return []Item{
		{ID: "1", Title: "write report", Completed: true},
		{ID: "2", Title: "buy milk", Completed: false},
		{ID: "3", Title: "call bank", Completed: false},
	}
}

func TestFilterMatch(t *testing.T) {
	done := Item{ID: "1", Completed: true}
	open := Item{ID: "2", Completed: false}

	assert.True(t, FilterAll.Match(done))
	assert.True(t, FilterAll.Match(open))
	assert.True(t, FilterActive.Match(open))
	assert.False(t, FilterActive.Match(done))
	assert.True(t, FilterCompleted.Match(done))
	assert.False(t, FilterCompleted.Match(open))
}

func TestFilterApply(t *testing.T) {
	items := sampleItems()

	active := FilterActive.Apply(items)
	if assert.Len(t, active, 2) {
		assert.Equal(t, "2", active[0].ID)
		assert.Equal(t, "3", active[1].ID)
	}

	completed := FilterCompleted.Apply(items)
	if assert.Len(t, completed, 1) {
		assert.Equal(t, "1", completed[0].ID)
	}

	all := FilterAll.Apply(items)
	assert.Equal(t, items, all)

	// Apply hands back a copy, not the backing array.
	all[0].Title = "mutated"
	assert.Equal(t, "write report", items[0].Title)
}

func TestFilterNextCycles(t *testing.T) {
	assert.Equal(t, FilterActive, FilterAll.Next())
	assert.Equal(t, FilterCompleted, FilterActive.Next())
	assert.Equal(t, FilterAll, FilterCompleted.Next())
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 2, Remaining(sampleItems()))
	assert.Equal(t, 0, Remaining(nil))
	assert.Equal(t, 0, Remaining([]Item{{ID: "1", Completed: true}}))
}
