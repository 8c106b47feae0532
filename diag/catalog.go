package diag

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// messages holds locale -> code -> positional "{}"-style template. Only
// en_US is compiled in; additional locales can be passed to NewCatalog as
// extra tables and will be matched via golang.org/x/text/language the
// same way en_US is.
var messages = map[string]map[string]string{
	"en_US": enUSMessages,
}

// Catalog resolves (locale, code) to a rendered message, matching the
// requested locale against the set of compiled tables with
// golang.org/x/text/language and falling back to en_US on a miss, exactly
// as spec.md section 6 specifies.
type Catalog struct {
	tags    []language.Tag
	locales []string
	tables  map[string]map[string]string
	matcher language.Matcher
	locale  string
}

// NewCatalog builds a Catalog over the compiled-in message tables plus any
// extra tables supplied by the caller (locale name -> code -> template).
func NewCatalog(extra map[string]map[string]string) *Catalog {
	c := &Catalog{tables: make(map[string]map[string]string)}
	for locale, table := range messages {
		c.register(locale, table)
	}
	for locale, table := range extra {
		c.register(locale, table)
	}
	return c
}

func (c *Catalog) register(locale string, table map[string]string) {
	c.tables[locale] = table
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		tag = language.AmericanEnglish
	}
	c.tags = append(c.tags, tag)
	c.locales = append(c.locales, locale)
	c.matcher = language.NewMatcher(c.tags)
}

// Resolve matches a requested locale (e.g. "fr_FR", "en", "") against the
// compiled tables and returns the best matching locale name, falling back
// to en_US.
func (c *Catalog) Resolve(locale string) string {
	if locale == "" || len(c.tags) == 0 {
		return "en_US"
	}
	want, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "en_US"
	}
	_, idx, _ := c.matcher.Match(want)
	if idx >= 0 && idx < len(c.locales) {
		return c.locales[idx]
	}
	return "en_US"
}

// Template looks up the raw template for (locale, code), falling back to
// en_US if the resolved locale has no entry for code.
func (c *Catalog) Template(locale, code string) (string, bool) {
	loc := c.Resolve(locale)
	if t, ok := c.tables[loc][code]; ok {
		return t, true
	}
	if t, ok := c.tables["en_US"][code]; ok {
		return t, true
	}
	return "", false
}

// Render formats the template for (locale, code) with positional "{}"
// placeholders, defaulting to "en_US" when no locale has been set on the
// Catalog via WithLocale.
func (c *Catalog) Render(code string, args ...interface{}) string {
	return c.RenderLocale(c.locale, code, args...)
}

// locale is the Catalog's default locale, set by WithLocale.
func (c *Catalog) WithLocale(locale string) *Catalog {
	c.locale = locale
	return c
}

// RenderLocale formats the template for (locale, code), substituting each
// "{}" in source order with the corresponding arg.
func (c *Catalog) RenderLocale(locale, code string, args ...interface{}) string {
	tmpl, ok := c.Template(locale, code)
	if !ok {
		return fmt.Sprintf("%s: <no message template>", code)
	}
	var b strings.Builder
	ai := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] == '{' && i+1 < len(tmpl) && tmpl[i+1] == '}' {
			if ai < len(args) {
				fmt.Fprintf(&b, "%v", args[ai])
				ai++
			}
			i++
			continue
		}
		b.WriteByte(tmpl[i])
	}
	return b.String()
}
