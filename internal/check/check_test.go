package check

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Check(t *testing.T) {
	r := NewRecorder()

	assert.True(t, r.Check("Upload status is 200", true))
	assert.False(t, r.Check("Upload contains filename", false))
	assert.True(t, r.Check("Upload status is 200", true))

	s := r.Summary()

	require.Len(t, s.Checks, 2)
	assert.Equal(t, Result{Name: "Upload status is 200", Passes: 2}, s.Checks[0])
	assert.Equal(t, Result{Name: "Upload contains filename", Fails: 1}, s.Checks[1])
	assert.Equal(t, 2, s.Passes)
	assert.Equal(t, 1, s.Fails)
	assert.Equal(t, 3, s.Total())
	assert.False(t, s.Passed())
	assert.InDelta(t, 2.0/3.0, s.Rate(), 1e-9)
}

func TestSummary_Empty(t *testing.T) {
	s := NewRecorder().Summary()

	assert.Empty(t, s.Checks)
	assert.True(t, s.Passed())
	assert.Equal(t, 0.0, s.Rate())
}

func TestSummary_IsACopy(t *testing.T) {
	r := NewRecorder()
	r.Check("a", true)

	s := r.Summary()
	r.Check("a", false)

	assert.Equal(t, 0, s.Checks[0].Fails)
	assert.Equal(t, 1, r.Summary().Checks[0].Fails)
}

func TestRecorder_Concurrent(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Check("shared", i%2 == 0)
		}(i)
	}
	wg.Wait()

	s := r.Summary()
	require.Len(t, s.Checks, 1)
	assert.Equal(t, 25, s.Checks[0].Passes)
	assert.Equal(t, 25, s.Checks[0].Fails)
}
