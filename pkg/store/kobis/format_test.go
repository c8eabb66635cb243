package kobis

import (
	"encoding/json"
	"testing"

	"github.com/de-tools/boxoffice-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatRankChange(t *testing.T) {
	tests := []struct {
		name      string
		inten     string
		oldAndNew string
		expected  domain.RankChange
	}{
		{name: "climbed", inten: "3", oldAndNew: "OLD", expected: "▲3"},
		{name: "explicit plus sign", inten: "+3", oldAndNew: "OLD", expected: "▲3"},
		{name: "dropped", inten: "-2", oldAndNew: "OLD", expected: "▼2"},
		{name: "unchanged", inten: "0", oldAndNew: "OLD", expected: "-"},
		{name: "new entry wins over delta", inten: "5", oldAndNew: "NEW", expected: "🆕 NEW"},
		{name: "new entry with garbage delta", inten: "n/a", oldAndNew: "NEW", expected: "🆕 NEW"},
		{name: "not a number", inten: "abc", oldAndNew: "OLD", expected: ""},
		{name: "empty delta", inten: "", oldAndNew: "OLD", expected: ""},
		{name: "surrounding whitespace", inten: " 4 ", oldAndNew: "OLD", expected: "▲4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRankChange(tt.inten, tt.oldAndNew))
		})
	}
}

func TestFormatAudience(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatAudience(1234567))
	assert.Equal(t, "999", FormatAudience(999))
	assert.Equal(t, "1,000,000", FormatAudience(1000000))
	assert.Equal(t, "0", FormatAudience(0))
}

func TestFormatSalesShare(t *testing.T) {
	assert.Equal(t, "12.3%", FormatSalesShare("12.3"))
	assert.Equal(t, "7%", FormatSalesShare("7"))
}

func TestRawText(t *testing.T) {
	assert.Equal(t, "-2", rawText(json.RawMessage(`"-2"`)))
	assert.Equal(t, "-2", rawText(json.RawMessage(`-2`)))
	assert.Equal(t, "", rawText(json.RawMessage(`null`)))
	assert.Equal(t, "3", rawText(json.RawMessage(`3.0`)))
	assert.Equal(t, "-12", rawText(json.RawMessage(`-1.2e1`)))
	assert.Equal(t, "2.5", rawText(json.RawMessage(`2.5`)))
	assert.Equal(t, "true", rawText(json.RawMessage(`true`)))
}
