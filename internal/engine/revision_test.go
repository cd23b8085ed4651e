package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyang234/taskforge/internal/store"
)

func fixtureStore() *store.Store {
	return &store.Store{Version: 1, Tasks: []store.Task{
		{ID: 1, Title: "one", Priority: store.PriorityHigh, Status: store.StatusDone},
		{ID: 2, Title: "two", Priority: store.PriorityMedium, Status: store.StatusDone},
		{ID: 3, Title: "three", Priority: store.PriorityMedium, Status: store.StatusInProgress},
		{ID: 4, Title: "four", Priority: store.PriorityLow, Status: store.StatusDone},
		{ID: 5, Title: "five", Priority: store.PriorityMedium, Status: store.StatusTodo, DependsOn: []int{3}},
		{ID: 6, Title: "six", Priority: store.PriorityLow, Status: store.StatusTodo, DependsOn: []int{5}},
	}}
}

func TestMergeRevisionReplacesFuture(t *testing.T) {
	s := fixtureStore()

	proposed := []store.Task{
		{ID: 5, Title: "five revised", Priority: store.PriorityHigh, DependsOn: []int{4}},
		{ID: 6, Title: "six revised", DependsOn: []int{5}},
		{ID: 7, Title: "seven", DependsOn: []int{6}},
	}

	require.NoError(t, MergeRevision(s, 5, proposed))

	assert.Len(t, s.Tasks, 7)
	// Past segment untouched
	assert.Equal(t, "three", s.Find(3).Title)
	assert.Equal(t, store.StatusInProgress, s.Find(3).Status)
	// Future replaced, defaults filled
	assert.Equal(t, "five revised", s.Find(5).Title)
	assert.Equal(t, store.StatusTodo, s.Find(5).Status)
	assert.Equal(t, store.PriorityMedium, s.Find(6).Priority)
	assert.Equal(t, []int{6}, s.Find(7).DependsOn)
}

func TestMergeRevisionDanglingRefFailsUnchanged(t *testing.T) {
	s := fixtureStore()
	before := append([]store.Task(nil), s.Tasks...)

	proposed := []store.Task{
		{ID: 5, Title: "five", DependsOn: []int{99}},
	}

	err := MergeRevision(s, 5, proposed)
	var ie *store.IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Contains(t, ie.Problems[0], "99")
	assert.Equal(t, before, s.Tasks, "store must be unmodified on failure")
}

func TestMergeRevisionEnumeratesEveryViolation(t *testing.T) {
	s := fixtureStore()

	proposed := []store.Task{
		{ID: 2, Title: "below boundary"},
		{ID: 5, Title: ""},
		{ID: 6, Title: "six", DependsOn: []int{6, 42}},
	}

	err := MergeRevision(s, 5, proposed)
	var ie *store.IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Len(t, ie.Problems, 4)
}

func TestMergeRevisionDepsMayCrossIntoPast(t *testing.T) {
	s := fixtureStore()

	proposed := []store.Task{
		{ID: 5, Title: "five", DependsOn: []int{1, 2, 3}},
	}

	require.NoError(t, MergeRevision(s, 5, proposed))
	assert.Len(t, s.Tasks, 5)
}

func TestMergeRevisionRejectsDuplicateProposedIDs(t *testing.T) {
	s := fixtureStore()

	proposed := []store.Task{
		{ID: 5, Title: "a"},
		{ID: 5, Title: "b"},
	}

	err := MergeRevision(s, 5, proposed)
	var ie *store.IntegrityError
	require.ErrorAs(t, err, &ie)
}

func TestMergeRevisionRejectsCycleInProposal(t *testing.T) {
	s := fixtureStore()
	before := append([]store.Task(nil), s.Tasks...)

	proposed := []store.Task{
		{ID: 5, Title: "five", DependsOn: []int{6}},
		{ID: 6, Title: "six", DependsOn: []int{5}},
	}

	err := MergeRevision(s, 5, proposed)
	var ie *store.IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, before, s.Tasks)
}

func TestMergeRevisionIdenticalProposalIsObservablyUnchanged(t *testing.T) {
	s := fixtureStore()
	before := append([]store.Task(nil), s.Tasks...)

	proposed := []store.Task{
		{ID: 5, Title: "five", Priority: store.PriorityMedium, Status: store.StatusTodo, DependsOn: []int{3}},
		{ID: 6, Title: "six", Priority: store.PriorityLow, Status: store.StatusTodo, DependsOn: []int{5}},
	}

	require.NoError(t, MergeRevision(s, 5, proposed))
	assert.Equal(t, before, s.Tasks)
}

func TestMergeRevisionCanShrinkFuture(t *testing.T) {
	s := fixtureStore()

	require.NoError(t, MergeRevision(s, 5, []store.Task{}))
	assert.Len(t, s.Tasks, 4)
	assert.Nil(t, s.Find(5))
	assert.Nil(t, s.Find(6))
}
