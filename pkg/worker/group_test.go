package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGroupID_IsUniqueAcrossCalls(t *testing.T) {
	a := NewGroupID()
	b := NewGroupID()
	assert.NotEqual(t, a, b)
}
