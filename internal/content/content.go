// Package content loads the display content document: warning messages,
// UI text and accessibility hints. The document is fetched once at startup
// from a local file or URL; any failure falls back to the compiled-in
// defaults so the application keeps working offline.
package content

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dontpressbutton/dontpress/assets"
	"github.com/dontpressbutton/dontpress/internal/colors"
	"github.com/dontpressbutton/dontpress/internal/config"
)

// UIText holds the strings rendered by the presentation layer.
type UIText struct {
	Header              string `json:"header"`
	Button              string `json:"button"`
	ConfirmPaymentTitle string `json:"confirmPaymentTitle"`
	ConfirmYes          string `json:"confirmYes"`
	ConfirmNo           string `json:"confirmNo"`
	PaymentCompleted    string `json:"paymentCompleted"`
}

// A11y holds accessibility behavior switches honored by the TUI.
type A11y struct {
	TrapFocusInModal bool `json:"trapFocusInModal"`
	CloseOnEsc       bool `json:"closeOnEsc"`
}

// Document is the content document consumed by the press TUI.
type Document struct {
	PressToConfirmCount int      `json:"pressToConfirmCount"`
	Messages            []string `json:"messages"`
	UIText              UIText   `json:"uiText"`
	A11y                A11y     `json:"a11y"`
}

// partial mirrors Document with optional fields so a loaded document can be
// merged onto the defaults field by field.
type partial struct {
	PressToConfirmCount *int      `json:"pressToConfirmCount"`
	Messages            []string  `json:"messages"`
	UIText              *struct {
		Header              *string `json:"header"`
		Button              *string `json:"button"`
		ConfirmPaymentTitle *string `json:"confirmPaymentTitle"`
		ConfirmYes          *string `json:"confirmYes"`
		ConfirmNo           *string `json:"confirmNo"`
		PaymentCompleted    *string `json:"paymentCompleted"`
	} `json:"uiText"`
	A11y *struct {
		TrapFocusInModal *bool `json:"trapFocusInModal"`
		CloseOnEsc       *bool `json:"closeOnEsc"`
	} `json:"a11y"`
}

// baseline is the last-resort document, used if the embedded JSON itself
// cannot be parsed.
var baseline = Document{
	PressToConfirmCount: 10,
	Messages:            []string{"누르지 마세요!"},
	UIText: UIText{
		Header:              "절대 누르지 마세요",
		Button:              "누르지 마세요",
		ConfirmPaymentTitle: "결제를 진행하시겠습니까?",
		ConfirmYes:          "예",
		ConfirmNo:           "아니요",
		PaymentCompleted:    "결제가 완료되었습니다.",
	},
	A11y: A11y{TrapFocusInModal: true, CloseOnEsc: true},
}

var (
	defaultDoc  Document
	defaultOnce sync.Once
)

const fetchTimeout = 5 * time.Second

// Default returns the compiled-in content document.
func Default() Document {
	defaultOnce.Do(func() {
		doc, err := merge(baseline, assets.DefaultContent)
		if err != nil {
			colors.Warning(fmt.Sprintf("embedded content document is invalid: %v", err))
			defaultDoc = baseline
			return
		}
		defaultDoc = doc
	})
	return clone(defaultDoc)
}

// Load resolves the content document for this session. Sources are tried in
// order: content_url, content_path, {config_dir}/content.json. The first
// configured source is used; on retrieval or parse failure the defaults are
// substituted with a warning, never an error.
func Load() Document {
	if url := config.Get("content_url", ""); url != "" {
		return loadFromURL(url)
	}
	if path := config.Get("content_path", ""); path != "" {
		return loadFromFile(path, true)
	}
	if configDir := config.Get("config_dir", ""); configDir != "" {
		path := filepath.Join(configDir, "content.json")
		if _, err := os.Stat(path); err == nil {
			return loadFromFile(path, false)
		}
	}
	return Default()
}

func loadFromURL(url string) Document {
	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Get(url)
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to fetch content from %s: %v; using defaults", url, err))
		return Default()
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		colors.Warning(fmt.Sprintf("unable to fetch content from %s: status %d; using defaults", url, resp.StatusCode))
		return Default()
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to read content from %s: %v; using defaults", url, err))
		return Default()
	}
	return parseOrDefault(data, url)
}

func loadFromFile(path string, warnMissing bool) Document {
	data, err := os.ReadFile(path)
	if err != nil {
		if warnMissing {
			colors.Warning(fmt.Sprintf("unable to read content file %s: %v; using defaults", path, err))
		} else {
			colors.Debug(fmt.Sprintf("unable to read content file %s: %v", path, err))
		}
		return Default()
	}
	return parseOrDefault(data, path)
}

func parseOrDefault(data []byte, source string) Document {
	doc, err := merge(Default(), data)
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to parse content document %s: %v; using defaults", source, err))
		return Default()
	}
	return doc
}

// merge overlays the JSON document in data onto base. Absent fields keep the
// base value; present-but-invalid fields are dropped with a warning.
func merge(base Document, data []byte) (Document, error) {
	var p partial
	if err := json.Unmarshal(data, &p); err != nil {
		return Document{}, err
	}

	doc := clone(base)
	if p.PressToConfirmCount != nil {
		if *p.PressToConfirmCount > 0 {
			doc.PressToConfirmCount = *p.PressToConfirmCount
		} else {
			colors.Warning(fmt.Sprintf("content document: pressToConfirmCount must be positive, got %d; keeping %d", *p.PressToConfirmCount, base.PressToConfirmCount))
		}
	}
	if p.Messages != nil {
		msgs := make([]string, 0, len(p.Messages))
		for _, m := range p.Messages {
			if strings.TrimSpace(m) != "" {
				msgs = append(msgs, m)
			}
		}
		if len(msgs) > 0 {
			doc.Messages = msgs
		} else {
			colors.Warning("content document: messages list is empty; keeping defaults")
		}
	}
	if p.UIText != nil {
		setString(&doc.UIText.Header, p.UIText.Header)
		setString(&doc.UIText.Button, p.UIText.Button)
		setString(&doc.UIText.ConfirmPaymentTitle, p.UIText.ConfirmPaymentTitle)
		setString(&doc.UIText.ConfirmYes, p.UIText.ConfirmYes)
		setString(&doc.UIText.ConfirmNo, p.UIText.ConfirmNo)
		setString(&doc.UIText.PaymentCompleted, p.UIText.PaymentCompleted)
	}
	if p.A11y != nil {
		if p.A11y.TrapFocusInModal != nil {
			doc.A11y.TrapFocusInModal = *p.A11y.TrapFocusInModal
		}
		if p.A11y.CloseOnEsc != nil {
			doc.A11y.CloseOnEsc = *p.A11y.CloseOnEsc
		}
	}
	return doc, nil
}

func setString(dst *string, src *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		*dst = *src
	}
}

func clone(doc Document) Document {
	out := doc
	out.Messages = make([]string, len(doc.Messages))
	copy(out.Messages, doc.Messages)
	return out
}
