package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, mustParseTime(t, "2024-05-01T09:00:00Z"), parseDate("2024-05-01T09:00:00Z"))
	assert.True(t, parseDate("").IsZero())
	assert.True(t, parseDate("yesterday").IsZero())
}

func TestParseDatePtr(t *testing.T) {
	parsed := parseDatePtr("2024-05-01T09:00:00Z")
	require.NotNil(t, parsed)
	assert.Equal(t, mustParseTime(t, "2024-05-01T09:00:00Z"), *parsed)

	assert.Nil(t, parseDatePtr(""))
	assert.Nil(t, parseDatePtr("not a date"))
}

func TestFormatDatePtr(t *testing.T) {
	value := mustParseTime(t, "2024-05-01T09:00:00Z")
	assert.Equal(t, "2024-05-01T09:00:00Z", formatDatePtr(&value))
	assert.Equal(t, "", formatDatePtr(nil))
}

func TestSplitJoinEmails(t *testing.T) {
	assert.Equal(t, []string{"a@x.test", "b@x.test"}, splitEmails("a@x.test, b@x.test"))
	assert.Equal(t, []string{"a@x.test"}, splitEmails("a@x.test,,"))
	assert.Empty(t, splitEmails("  "))

	assert.Equal(t, "a@x.test,b@x.test", joinEmails([]string{"a@x.test", "b@x.test"}))
	assert.Equal(t, "", joinEmails(nil))
}
