package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixtureErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrNoFixtures", ErrNoFixtures, "no audio fixtures configured"},
		{"ErrFixtureUnreadable", ErrFixtureUnreadable, "audio fixture could not be read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAudioErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrAudioNotFound", ErrAudioNotFound, "file mapping not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	all := []error{
		ErrNoFixtures,
		ErrFixtureUnreadable,
		ErrInvalidConfig,
		ErrReportEncode,
		ErrChecksFailed,
		ErrAudioNotFound,
	}

	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}

func TestWrappedErrorsMatch(t *testing.T) {
	wrapped := fmt.Errorf("load testdata/0_george_0.wav: %w", ErrFixtureUnreadable)

	assert.True(t, errors.Is(wrapped, ErrFixtureUnreadable))
	assert.False(t, errors.Is(wrapped, ErrNoFixtures))
}
