package emailtemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_SubstitutesVariables(t *testing.T) {
	out := Render("Hello {{name}}, your event is {{event}}.", map[string]string{
		"name":  "Alex",
		"event": "Bass Wars",
	})
	assert.Equal(t, "Hello Alex, your event is Bass Wars.", out)
}

func TestRender_LeavesUnknownMarkersVisible(t *testing.T) {
	out := Render("Hi {{name}}, see you at {{venue}}.", map[string]string{"name": "Sam"})
	assert.Equal(t, "Hi Sam, see you at {{venue}}.", out)
}

func TestRender_NoVariables(t *testing.T) {
	assert.Equal(t, "plain text", Render("plain text", nil))
}

func TestRendered_AppliesToAllParts(t *testing.T) {
	tmpl := Template{
		Subject:  "Welcome {{name}}",
		HTMLBody: "<p>Hello {{name}}</p>",
		TextBody: "Hello {{name}}",
	}
	rendered := tmpl.Rendered(map[string]string{"name": "Jo"})
	assert.Equal(t, "Welcome Jo", rendered.Subject)
	assert.Equal(t, "<p>Hello Jo</p>", rendered.HTMLBody)
	assert.Equal(t, "Hello Jo", rendered.TextBody)
	// The receiver is unchanged.
	assert.Equal(t, "Welcome {{name}}", tmpl.Subject)
}
