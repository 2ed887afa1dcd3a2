package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadTemplates_DefinesAllPages(t *testing.T) {
	tmpl, err := LoadTemplates(TemplatesFS(), zap.NewNop())
	require.NoError(t, err)

	for _, name := range []string{"login.html", "index.html", "results.html", "header", "footer"} {
		assert.NotNil(t, tmpl.Lookup(name), "template %s missing", name)
	}
}

func TestLoginTemplate_EscapesInput(t *testing.T) {
	tmpl, err := LoadTemplates(TemplatesFS(), zap.NewNop())
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "login.html", map[string]interface{}{
		"PageTitle":  "Login",
		"IsLoggedIn": false,
		"Username":   `<script>alert(1)</script>`,
		"Error":      "Invalid username or password",
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Invalid username or password")
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.NotContains(t, html, `href="/logout"`)
}

func TestFuncMap(t *testing.T) {
	funcs := FuncMap()

	title := funcs["title"].(func(interface{}) string)
	assert.Equal(t, "Safe", title("safe"))
	assert.Equal(t, "", title(""))

	inc := funcs["inc"].(func(int) int)
	assert.Equal(t, 1, inc(0))
}
