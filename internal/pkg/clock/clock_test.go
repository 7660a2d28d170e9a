package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	at := time.Date(2024, 3, 9, 23, 59, 58, 0, time.UTC)
	c := Fixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, "2024-03-09", Today(c))
}

func TestNew_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	now := New(loc).Now()

	assert.Equal(t, loc, now.Location())
}

func TestNew_NilLocationIsLocal(t *testing.T) {
	assert.Equal(t, time.Local, New(nil).Now().Location())
}

func TestFunc(t *testing.T) {
	calls := 0
	c := Func(func() time.Time {
		calls++
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	})

	Today(c)
	Today(c)
	assert.Equal(t, 2, calls)
}
