package diag

import "testing"

func TestRenderSubstitutesPositionalArgs(t *testing.T) {
	c := NewCatalog(nil).WithLocale("en_US")
	got := c.Render(LUnableToConvertInt, "xyz")
	want := "unable to convert xyz to an integer"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestResolveFallsBackToEnUS(t *testing.T) {
	c := NewCatalog(nil)
	if got := c.Resolve("fr_FR"); got != "en_US" {
		t.Errorf("Resolve(fr_FR) = %q, want en_US (no fr_FR table registered)", got)
	}
	if got := c.Resolve(""); got != "en_US" {
		t.Errorf("Resolve(\"\") = %q, want en_US", got)
	}
}

func TestRegisteredLocaleIsPreferred(t *testing.T) {
	extra := map[string]map[string]string{
		"fr_FR": {LUnterminatedString: "chaîne non terminée"},
	}
	c := NewCatalog(extra)
	if got := c.Resolve("fr_FR"); got != "fr_FR" {
		t.Errorf("Resolve(fr_FR) = %q, want fr_FR", got)
	}
	got := c.RenderLocale("fr_FR", LUnterminatedString)
	want := "chaîne non terminée"
	if got != want {
		t.Errorf("RenderLocale(fr_FR, ...) = %q, want %q", got, want)
	}
}

func TestTemplateMissingCodeFallsBackToEnUS(t *testing.T) {
	extra := map[string]map[string]string{"fr_FR": {}}
	c := NewCatalog(extra)
	tmpl, ok := c.Template("fr_FR", LUnterminatedString)
	if !ok {
		t.Fatal("Template: expected fallback to en_US to succeed")
	}
	if tmpl == "" {
		t.Error("Template: empty fallback template")
	}
}
