package idx_test

import (
	"testing"
	"time"

	"github.com/taskdesk/taskdesk/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := idx.Parse("not-a-ulid")
	require.Error(t, err)

	_, err = idx.Parse("")
	require.Error(t, err)
}

func TestOrdering(t *testing.T) {
	// IDs sort lexically by creation time, which is what the task listing's
	// ORDER BY relies on.
	a := idx.NewAt(time.Unix(1, 0).UTC())
	b := idx.NewAt(time.Unix(2, 0).UTC())
	require.Less(t, a.String(), b.String())

	// Same-millisecond IDs still sort in generation order.
	now := time.Now().UTC()
	first := idx.NewAt(now)
	second := idx.NewAt(now)
	require.Less(t, first.String(), second.String())
}

func TestTimeExtraction(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	id := idx.NewAt(tm)
	require.WithinDuration(t, tm, id.Time(), time.Millisecond)
}
