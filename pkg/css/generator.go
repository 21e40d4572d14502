// Package css turns an ordered list of tag to icon pairs into the
// stylesheet that hides tag text in the host editor and shows the icon
// in its place. Generation is a pure function of the pair list and the
// badge styling: identical input yields byte-identical output.
package css

import (
	"strings"

	"github.com/arthur-debert/tagicons/pkg/errors"
	"github.com/arthur-debert/tagicons/pkg/types"
)

// Badge holds the decorative styling of the icon rule.
type Badge struct {
	Background string
	Border     string
	Radius     string
}

// DefaultBadge returns the badge styling used when none is configured.
// The values are host theme variables so the badge follows the theme.
func DefaultBadge() Badge {
	return Badge{
		Background: "var(--background-secondary-alt)",
		Border:     "1px solid var(--background-modifier-border)",
		Radius:     "4px",
	}
}

// Options configures generation.
type Options struct {
	// Badge styling for the icon rules. Empty fields fall back to
	// DefaultBadge values.
	Badge Badge
}

// Generate produces the stylesheet for the given pairs with default
// badge styling.
func Generate(pairs []types.TagIconPair) (string, error) {
	return GenerateWithOptions(pairs, Options{})
}

// GenerateWithOptions produces the stylesheet for the given pairs.
//
// The output is four rule groups, each followed by a blank line:
// one rule shrinking every tag selector to nothing, two rules restoring
// the :after size (plain and active editor line), and one icon rule per
// pair carrying the content string and the badge.
//
// An empty pair list produces empty output. Every pair is validated
// first: the settings blob is hand-editable, so malformed tags must
// fail here rather than produce degenerate selectors.
func GenerateWithOptions(pairs []types.TagIconPair, opts Options) (string, error) {
	for _, pair := range pairs {
		if err := pair.Validate(); err != nil {
			return "", err
		}
	}

	if len(pairs) == 0 {
		return "", nil
	}

	badge := opts.Badge
	if badge.Background == "" {
		badge.Background = DefaultBadge().Background
	}
	if badge.Border == "" {
		badge.Border = DefaultBadge().Border
	}
	if badge.Radius == "" {
		badge.Radius = DefaultBadge().Radius
	}

	base := make([]string, 0, len(pairs)*2)
	for _, pair := range pairs {
		base = append(base, selectorsFor(pair)...)
	}

	var b strings.Builder

	// Suppress the literal tag text.
	writeRule(&b, base, []string{
		"font-size: 0px;",
		"padding: 0;",
	})

	// Restore the :after size, where the icon lives.
	after := withSuffix(base, ":after")
	writeRule(&b, after, []string{
		"font-size: var(--font-text-size);",
	})

	// Same restoration on the active editor line.
	writeRule(&b, withPrefix(after, ".cm-active "), []string{
		"font-size: var(--font-text-size);",
	})

	// One icon rule per pair.
	for _, pair := range pairs {
		writeRule(&b, []string{
			`.tag[href="#` + pair.Tag + `"]:after`,
			".cm-hashtag-begin.cm-tag-" + pair.CleanTag() + ":after",
		}, []string{
			`content: "` + escapeContent(pair.Icon) + `";`,
			"background-color: " + badge.Background + ";",
			"border: " + badge.Border + ";",
			"border-radius: " + badge.Radius + ";",
		})
	}

	return b.String(), nil
}

// selectorsFor returns the base selectors matching a pair in the
// preview and the live editor. Underscored names get two extra
// selectors because the editor splits such tags into adjacent spans.
func selectorsFor(pair types.TagIconPair) []string {
	clean := pair.CleanTag()
	selectors := []string{
		`.tag[href="#` + pair.Tag + `"]`,
		".cm-tag-" + clean,
	}

	_, name := pair.Split()
	if strings.Contains(name, "_") {
		selectors = append(selectors,
			".cm-tag-"+clean+" + span.cm-hashtag",
			".cm-tag-"+clean+" + span.cm-hashtag + span.cm-hashtag",
		)
	}

	return selectors
}

// writeRule emits one rule: selectors joined by ",\n", a braced body
// with two-space indentation, then a blank line.
func writeRule(b *strings.Builder, selectors []string, declarations []string) {
	for i, sel := range selectors {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(sel)
	}
	b.WriteString(" {\n")
	for _, decl := range declarations {
		b.WriteString("  ")
		b.WriteString(decl)
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func withSuffix(selectors []string, suffix string) []string {
	out := make([]string, len(selectors))
	for i, sel := range selectors {
		out[i] = sel + suffix
	}
	return out
}

func withPrefix(selectors []string, prefix string) []string {
	out := make([]string, len(selectors))
	for i, sel := range selectors {
		out[i] = prefix + sel
	}
	return out
}

// escapeContent escapes an icon for use inside a double-quoted CSS
// string. Backslashes first, then quotes.
func escapeContent(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// Validate reports whether every pair can be rendered. It is the same
// check Generate performs, exposed for callers that want to fail early.
func Validate(pairs []types.TagIconPair) error {
	for i, pair := range pairs {
		if err := pair.Validate(); err != nil {
			return errors.Wrapf(err, errors.GetErrorCode(err), "pair %d cannot be rendered", i+1)
		}
	}
	return nil
}
