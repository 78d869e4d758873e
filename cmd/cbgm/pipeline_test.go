package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcludeIDRemovesOnlyMatchingEntry(t *testing.T) {
	pool := []string{"A", "B", "C", "B"}
	assert.Equal(t, []string{"A", "C"}, excludeID(pool, "B"))
}

func TestExcludeIDLeavesPoolUnchangedWhenIDAbsent(t *testing.T) {
	pool := []string{"A", "B", "C"}
	assert.Equal(t, []string{"A", "B", "C"}, excludeID(pool, "Z"))
}

func TestExitCodeForUsageError(t *testing.T) {
	assert.Equal(t, exitUsage, exitCodeFor(newUsageError("bad argument: %s", "x")))
}

func TestExitCodeForRuntimeError(t *testing.T) {
	assert.Equal(t, exitRuntime, exitCodeFor(errors.New("disk on fire")))
}
