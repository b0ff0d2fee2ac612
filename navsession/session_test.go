package navsession

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trzy/robart/logging"
)

func TestNewAssignsUniqueID(t *testing.T) {
	a := New(nil)
	b := New(nil)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestLoggerIsNilWithoutABaseLogger(t *testing.T) {
	s := New(nil)
	assert.Nil(t, s.Logger())
}

func TestLoggerIsNotNilWithABaseLogger(t *testing.T) {
	s := New(logging.NewTestLogger(t))
	assert.NotNil(t, s.Logger())
}
