package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyang234/taskforge/internal/store"
)

func TestIsSatisfied(t *testing.T) {
	s := &store.Store{Tasks: []store.Task{
		{ID: 1, Title: "a", Status: store.StatusDone},
		{ID: 2, Title: "b", Status: store.StatusDone},
		{ID: 3, Title: "c", Status: store.StatusTodo, DependsOn: []int{1, 2}},
	}}

	ok, err := IsSatisfied(s.Find(3), s)
	require.NoError(t, err)
	assert.True(t, ok)

	s.Find(2).Status = store.StatusInProgress
	ok, err = IsSatisfied(s.Find(3), s)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsSatisfiedNoDeps(t *testing.T) {
	s := &store.Store{Tasks: []store.Task{{ID: 1, Title: "a", Status: store.StatusTodo}}}

	ok, err := IsSatisfied(s.Find(1), s)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsSatisfiedDanglingDepIsFault(t *testing.T) {
	s := &store.Store{Tasks: []store.Task{
		{ID: 1, Title: "a", Status: store.StatusTodo, DependsOn: []int{99}},
	}}

	ok, err := IsSatisfied(s.Find(1), s)
	assert.False(t, ok)
	var ie *store.IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Contains(t, ie.Problems[0], "99")
}

func TestFindCyclesTwoNode(t *testing.T) {
	s := &store.Store{Tasks: []store.Task{
		{ID: 1, Title: "a", Status: store.StatusTodo, DependsOn: []int{2}},
		{ID: 2, Title: "b", Status: store.StatusTodo, DependsOn: []int{1}},
		{ID: 3, Title: "c", Status: store.StatusTodo},
	}}

	assert.True(t, HasCycle(s))
	assert.Equal(t, []int{1, 2}, FindCycles(s))
}

func TestFindCyclesReachingIsNotOn(t *testing.T) {
	// 1 depends on the 2<->3 cycle but is not itself on it
	s := &store.Store{Tasks: []store.Task{
		{ID: 1, Title: "a", Status: store.StatusTodo, DependsOn: []int{2}},
		{ID: 2, Title: "b", Status: store.StatusTodo, DependsOn: []int{3}},
		{ID: 3, Title: "c", Status: store.StatusTodo, DependsOn: []int{2}},
	}}

	assert.Equal(t, []int{2, 3}, FindCycles(s))
}

func TestFindCyclesSelfLoop(t *testing.T) {
	s := &store.Store{Tasks: []store.Task{
		{ID: 1, Title: "a", Status: store.StatusTodo, DependsOn: []int{1}},
	}}

	assert.Equal(t, []int{1}, FindCycles(s))
}

func TestNoCycleOnDiamond(t *testing.T) {
	s := &store.Store{Tasks: []store.Task{
		{ID: 1, Title: "a", Status: store.StatusTodo},
		{ID: 2, Title: "b", Status: store.StatusTodo, DependsOn: []int{1}},
		{ID: 3, Title: "c", Status: store.StatusTodo, DependsOn: []int{1}},
		{ID: 4, Title: "d", Status: store.StatusTodo, DependsOn: []int{2, 3}},
	}}

	assert.False(t, HasCycle(s))
	assert.Empty(t, FindCycles(s))
}

func TestCyclicTasksNeverSelected(t *testing.T) {
	s := &store.Store{Tasks: []store.Task{
		{ID: 1, Title: "a", Status: store.StatusTodo, DependsOn: []int{2}},
		{ID: 2, Title: "b", Status: store.StatusTodo, DependsOn: []int{1}},
	}}

	require.True(t, HasCycle(s))
	next, err := SelectNext(s)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestCheckGraphReportsCycleMembers(t *testing.T) {
	s := &store.Store{Tasks: []store.Task{
		{ID: 1, Title: "a", Status: store.StatusTodo, DependsOn: []int{2}},
		{ID: 2, Title: "b", Status: store.StatusTodo, DependsOn: []int{1}},
	}}

	err := CheckGraph(s)
	var ie *store.IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Len(t, ie.Problems, 2)
}
