package ulid

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID(t *testing.T) {
	t.Parallel()

	id := NewULID()
	assert.Len(t, id, 26)
	assert.NotEqual(t, id, NewULID())
}

func TestNewULIDAt(t *testing.T) {
	t.Parallel()

	at := time.Date(2015, 9, 14, 10, 20, 12, 345_000_000, time.UTC)

	parsed, err := ulid.Parse(NewULIDAt(at))
	require.NoError(t, err)
	assert.True(t, at.Equal(ulid.Time(parsed.Time())))

	earlier := NewULIDAt(at)
	later := NewULIDAt(at.Add(time.Millisecond))
	assert.Less(t, earlier, later)
}
