package quiz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBank(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBank(t *testing.T) {
	path := writeBank(t, `{
		"blocks": [{"index": 0, "title": "Блок I"}, {"index": 1, "title": "Блок II"}],
		"questions": [
			{"text": "Первый?", "options": [{"text": "Да", "value": -1}, {"text": "Нет", "value": 1}]},
			{"text": "Второй?", "options": [{"text": "Да", "value": 0}]}
		]
	}`)

	b, err := LoadBank(path)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "Блок I", b.BlockTitle(0))
	assert.Equal(t, "Блок II", b.BlockTitle(1))
	assert.Equal(t, "", b.BlockTitle(5))
}

func TestLoadBankFailsFast(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"empty bank",
			`{"questions": []}`,
			"empty",
		},
		{
			"question without options",
			`{"questions": [{"text": "Вопрос?", "options": []}]}`,
			"no options",
		},
		{
			"duplicate option labels",
			`{"questions": [{"text": "Вопрос?", "options": [{"text": "Да", "value": 1}, {"text": "Да", "value": 2}]}]}`,
			"duplicate option",
		},
		{
			"block boundary outside bank",
			`{"blocks": [{"index": 9, "title": "Блок"}], "questions": [{"text": "Вопрос?", "options": [{"text": "Да", "value": 0}]}]}`,
			"outside the bank",
		},
		{
			"malformed json",
			`{"questions": [`,
			"parse",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBank(writeBank(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadBankMissingFile(t *testing.T) {
	_, err := LoadBank(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestMatchIsExactAndCaseSensitive(t *testing.T) {
	q := Question{Options: []Option{{Text: "Да", Value: -1}, {Text: "Нет", Value: 1}}}

	o, ok := q.Match("Да")
	require.True(t, ok)
	assert.Equal(t, -1, o.Value)

	for _, in := range []string{"да", "ДА", "Да ", "Д", "Может быть", ""} {
		_, ok := q.Match(in)
		assert.False(t, ok, "input %q", in)
	}
}

// The shipped bank must satisfy the reference configuration.
func TestShippedBankIsValid(t *testing.T) {
	b, err := LoadBank(filepath.Join("..", "..", "questions.json"))
	require.NoError(t, err)
	assert.Equal(t, 20, b.Len())
	assert.NotEmpty(t, b.BlockTitle(0))
	assert.NotEmpty(t, b.BlockTitle(6))
	assert.NotEmpty(t, b.BlockTitle(16))
	assert.Empty(t, b.BlockTitle(1))
}
