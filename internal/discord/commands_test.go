package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmojiAPIName(t *testing.T) {
	assert.Equal(t, "📝", emojiAPIName("📝"))
	assert.Equal(t, "Dokument:123456", emojiAPIName("<:Dokument:123456>"))
	assert.Equal(t, "Spin:987", emojiAPIName("<a:Spin:987>"))
	assert.Equal(t, "plain", emojiAPIName("plain"))
}

func TestSessionDateParsing(t *testing.T) {
	parsed, err := time.ParseInLocation(dateLayout, "01.06.2025 18:00", time.Local)
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 18, parsed.Hour())

	_, err = time.ParseInLocation(dateLayout, "2025-06-01 18:00", time.Local)
	assert.Error(t, err)

	_, err = time.ParseInLocation(dateLayout, "32.01.2025 18:00", time.Local)
	assert.Error(t, err)
}
