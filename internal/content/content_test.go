package content

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dontpressbutton/dontpress/internal/config"
)

func loadConfigWith(t *testing.T, env map[string]string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(t.TempDir(), "state"))
	for k, v := range env {
		t.Setenv(k, v)
	}
	config.Load()
}

func TestDefaultDocument(t *testing.T) {
	doc := Default()

	assert.Equal(t, 10, doc.PressToConfirmCount)
	assert.NotEmpty(t, doc.Messages)
	assert.NotEmpty(t, doc.UIText.Button)
	assert.NotEmpty(t, doc.UIText.ConfirmPaymentTitle)
	assert.True(t, doc.A11y.TrapFocusInModal)
	assert.True(t, doc.A11y.CloseOnEsc)
}

func TestDefaultReturnsCopies(t *testing.T) {
	a := Default()
	a.Messages[0] = "mutated"

	b := Default()
	assert.NotEqual(t, "mutated", b.Messages[0])
}

func TestLoadFromFileMergesOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")
	body := `{"pressToConfirmCount": 3, "messages": ["hi"], "uiText": {"button": "press"}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	loadConfigWith(t, map[string]string{"DONTPRESS_CONTENT_PATH": path})
	doc := Load()

	assert.Equal(t, 3, doc.PressToConfirmCount)
	assert.Equal(t, []string{"hi"}, doc.Messages)
	assert.Equal(t, "press", doc.UIText.Button)
	// Absent fields keep defaults.
	assert.Equal(t, Default().UIText.ConfirmPaymentTitle, doc.UIText.ConfirmPaymentTitle)
	assert.True(t, doc.A11y.CloseOnEsc)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	loadConfigWith(t, map[string]string{"DONTPRESS_CONTENT_PATH": "/nonexistent/content.json"})
	doc := Load()

	assert.Equal(t, Default(), doc)
}

func TestLoadMalformedFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	loadConfigWith(t, map[string]string{"DONTPRESS_CONTENT_PATH": path})
	doc := Load()

	assert.Equal(t, Default(), doc)
}

func TestLoadFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pressToConfirmCount": 7}`))
	}))
	defer srv.Close()

	loadConfigWith(t, map[string]string{"DONTPRESS_CONTENT_URL": srv.URL})
	doc := Load()

	assert.Equal(t, 7, doc.PressToConfirmCount)
	assert.Equal(t, Default().Messages, doc.Messages)
}

func TestLoadFromURLErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	loadConfigWith(t, map[string]string{"DONTPRESS_CONTENT_URL": srv.URL})
	doc := Load()

	assert.Equal(t, Default(), doc)
}

func TestMergeRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"non-positive threshold", `{"pressToConfirmCount": 0}`},
		{"negative threshold", `{"pressToConfirmCount": -4}`},
		{"blank messages", `{"messages": ["", "  "]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := merge(Default(), []byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, Default(), doc)
		})
	}
}

func TestMergeA11yOverrides(t *testing.T) {
	doc, err := merge(Default(), []byte(`{"a11y": {"closeOnEsc": false}}`))
	require.NoError(t, err)

	assert.False(t, doc.A11y.CloseOnEsc)
	assert.True(t, doc.A11y.TrapFocusInModal)
}
