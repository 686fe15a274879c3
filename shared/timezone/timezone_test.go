package timezone_test

import (
	"pororo/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	appTime := timezone.ToAppTime(utcTime)

	assert.True(t, appTime.Equal(utcTime))
	assert.Equal(t, timezone.GetLocation(), appTime.Location())
}

func TestFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.NotEmpty(t, timezone.Format(testTime, time.RFC3339))
}
