package emailtemplate

import "strings"

// Render substitutes {{key}} markers with the supplied variables. Markers
// without a matching variable are left in place so a missing value is visible
// in the delivered mail rather than silently blank.
func Render(s string, vars map[string]string) string {
	if len(vars) == 0 {
		return s
	}
	pairs := make([]string, 0, len(vars)*2)
	for key, value := range vars {
		pairs = append(pairs, "{{"+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Rendered returns a copy of the template with subject and bodies rendered.
func (t Template) Rendered(vars map[string]string) Template {
	t.Subject = Render(t.Subject, vars)
	t.HTMLBody = Render(t.HTMLBody, vars)
	t.TextBody = Render(t.TextBody, vars)
	return t
}
