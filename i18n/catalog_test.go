package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCatalogLocalesHaveSameKeys(t *testing.T) {
	raw := map[string]map[string]string{}
	require.NoError(t, yaml.Unmarshal(messagesYAML, &raw))

	for key := range raw["en"] {
		assert.Contains(t, raw["de"], key, "german catalog missing %q", key)
	}
	for key := range raw["de"] {
		assert.Contains(t, raw["en"], key, "english catalog missing %q", key)
	}
}

func TestMessagesT(t *testing.T) {
	c := MustLoad(German)

	assert.Equal(t, "Email is required", c.Messages(English).T("email_required"))
	assert.Equal(t, "E-Mail ist erforderlich", c.Messages(German).T("email_required"))
	assert.Equal(t, German, c.Messages("fr").Locale())
	assert.Equal(t, "no_such_key", c.Messages(English).T("no_such_key"))
	assert.Equal(t, "email_required", Messages{}.T("email_required"))
}

func TestFallback(t *testing.T) {
	c, err := Parse([]byte("en:\n  a: b\nde:\n  a: c\n"), English)
	require.NoError(t, err)
	assert.Equal(t, English, c.Fallback())
	assert.Equal(t, English, c.Messages("fr").Locale())
}

func TestParseMissingFallback(t *testing.T) {
	_, err := Parse([]byte("en:\n  a: b\n"), German)
	assert.Error(t, err)
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, German, ParseLocale("de-CH"))
	assert.Equal(t, English, ParseLocale(" EN_us "))
	assert.Equal(t, English, ParseLocale("en;q=0.8"))
}

func TestFromRequest(t *testing.T) {
	c := MustLoad(German)

	tests := []struct {
		name   string
		cookie string
		accept string
		want   Locale
	}{
		{name: "cookie wins", cookie: "en", accept: "de-DE", want: English},
		{name: "accept language", accept: "fr-FR, en-US;q=0.8", want: English},
		{name: "unsupported cookie falls through", cookie: "it", accept: "en", want: English},
		{name: "default", want: German},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.cookie != "" {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				r.Header.Set("Accept-Language", tc.accept)
			}
			assert.Equal(t, tc.want, c.FromRequest(r, German))
		})
	}
}
