package templates

import (
	"bytes"
	"testing"
	"time"

	"arthurflix/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testView struct {
	Site      *entity.Site
	Principal *entity.Principal
	Title     string
	Message   string
	CSRF      string
	Data      any
}

func TestRenderer_RendersEveryPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	for _, name := range []string{
		"login", "register", "session_ended", "activate", "list", "detail",
		"episodes", "stream", "landing", "profile", "error",
	} {
		_, ok := r.pages[name]
		assert.True(t, ok, "missing page %s", name)
	}
}

func TestRenderer_Render(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "error", &testView{
		Site:  &entity.Site{Name: "ArthurFlix", PrimaryColor: "#123456"},
		Title: "Link expired",
		Data:  map[string]string{"Message": "This download link has expired.", "Code": "TOKEN_EXPIRED"},
	}, nil)

	require.NoError(t, err)
	html := buf.String()
	assert.Contains(t, html, "Link expired · ArthurFlix")
	assert.Contains(t, html, "This download link has expired.")
	assert.Contains(t, html, "#123456")
	assert.Contains(t, html, "Log in")
}

func TestRenderer_Landing(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "landing", &testView{
		Principal: &entity.Principal{Username: "moviefan"},
		Data: map[string]any{
			"Title":        "Alpha",
			"Quality":      entity.QualityHD,
			"BotUsername":  "arthurflix_bot",
			"TelegramLink": "https://t.me/arthurflix_bot?start=tok",
			"QRCodePNG":    []byte{1, 2, 3},
			"Direct":       &entity.DirectDownloadToken{Token: "AbCdEf123456", ExpiresAt: time.Now().Add(2 * time.Hour)},
		},
	}, nil)

	require.NoError(t, err)
	html := buf.String()
	assert.Contains(t, html, "data:image/png;base64,AQID")
	assert.Contains(t, html, "/direct/AbCdEf123456/")
	assert.Contains(t, html, "moviefan")
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	assert.Error(t, r.Render(&bytes.Buffer{}, "nope", nil, nil))
}
