package assets

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContentIsValid(t *testing.T) {
	require.NotEmpty(t, DefaultContent)

	var doc struct {
		PressToConfirmCount int      `json:"pressToConfirmCount"`
		Messages            []string `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(DefaultContent, &doc))
	assert.Positive(t, doc.PressToConfirmCount)
	assert.NotEmpty(t, doc.Messages)
}
