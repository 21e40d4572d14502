package types

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/tagicons/pkg/errors"
)

// TagSeparator divides the category and name segments of a tag.
const TagSeparator = "/"

// TagIconPair maps a hierarchical tag to the icon glyph shown in its place.
type TagIconPair struct {
	// Tag is the full tag in "category/name" form, without the leading #.
	Tag string `json:"tag" yaml:"tag" toml:"tag"`

	// Icon is the replacement glyph, emitted as a CSS content string.
	Icon string `json:"icon" yaml:"icon" toml:"icon"`
}

// Validate checks that both the tag and the icon are well formed.
func (p TagIconPair) Validate() error {
	if err := ValidateTag(p.Tag); err != nil {
		return err
	}
	return ValidateIcon(p.Icon)
}

// Split returns the category and name segments of the tag.
// The result is only meaningful for a tag that passes ValidateTag.
func (p TagIconPair) Split() (category, name string) {
	i := strings.Index(p.Tag, TagSeparator)
	if i < 0 {
		return p.Tag, ""
	}
	return p.Tag[:i], p.Tag[i+1:]
}

// CleanTag returns the tag with the separator removed, matching the
// editor's token class naming (task/inbox becomes taskinbox).
func (p TagIconPair) CleanTag() string {
	return strings.Replace(p.Tag, TagSeparator, "", 1)
}

// ValidateTag checks that a tag is "category/name" with exactly one
// separator and two non-empty segments. The leading # is not part of
// a tag and is rejected here.
func ValidateTag(tag string) error {
	if tag == "" {
		return errors.New(errors.ErrTagInvalid, "tag is empty")
	}
	if strings.ContainsAny(tag, " \t\r\n") {
		return errors.Newf(errors.ErrTagInvalid, "tag %q contains whitespace", tag)
	}
	if strings.Contains(tag, "#") {
		return errors.Newf(errors.ErrTagInvalid, "tag %q must not contain '#'", tag)
	}
	switch strings.Count(tag, TagSeparator) {
	case 0:
		return errors.Newf(errors.ErrTagInvalid, "tag %q is missing the category separator, expected category/name", tag)
	case 1:
		// ok
	default:
		return errors.Newf(errors.ErrTagInvalid, "tag %q has more than one separator, expected category/name", tag)
	}
	category, name, _ := strings.Cut(tag, TagSeparator)
	if category == "" || name == "" {
		return errors.Newf(errors.ErrTagInvalid, "tag %q has an empty segment, expected category/name", tag)
	}
	return nil
}

// ValidateIcon checks that an icon is non-empty printable text.
// Quotes and backslashes are allowed; the generator escapes them.
func ValidateIcon(icon string) error {
	if icon == "" {
		return errors.New(errors.ErrIconInvalid, "icon is empty")
	}
	for _, r := range icon {
		if unicode.IsControl(r) {
			return errors.Newf(errors.ErrIconInvalid, "icon %q contains a control character", icon)
		}
	}
	return nil
}

// Settings holds the ordered tag to icon mapping. Order is significant:
// the generated stylesheet lists selectors and rules in pair order.
type Settings struct {
	TagIconPairs []TagIconPair `json:"tagIconPairs"`
}

// DefaultSettings returns the settings used when nothing is stored yet.
func DefaultSettings() *Settings {
	return &Settings{TagIconPairs: []TagIconPair{}}
}

// Len returns the number of pairs.
func (s *Settings) Len() int {
	return len(s.TagIconPairs)
}

// At returns the pair at the given zero-based index.
func (s *Settings) At(index int) (TagIconPair, error) {
	if err := s.checkIndex(index); err != nil {
		return TagIconPair{}, err
	}
	return s.TagIconPairs[index], nil
}

// HasTag reports whether any pair already maps the given tag.
func (s *Settings) HasTag(tag string) bool {
	for _, p := range s.TagIconPairs {
		if p.Tag == tag {
			return true
		}
	}
	return false
}

// Append validates the pair and adds it at the end of the list.
func (s *Settings) Append(pair TagIconPair) error {
	if err := pair.Validate(); err != nil {
		return err
	}
	s.TagIconPairs = append(s.TagIconPairs, pair)
	return nil
}

// RemoveAt deletes and returns the pair at the given zero-based index.
func (s *Settings) RemoveAt(index int) (TagIconPair, error) {
	if err := s.checkIndex(index); err != nil {
		return TagIconPair{}, err
	}
	removed := s.TagIconPairs[index]
	s.TagIconPairs = append(s.TagIconPairs[:index], s.TagIconPairs[index+1:]...)
	return removed, nil
}

// MoveUp swaps the pair at the given zero-based index with its predecessor.
func (s *Settings) MoveUp(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if index == 0 {
		return errors.New(errors.ErrInvalidInput, "pair is already first")
	}
	s.TagIconPairs[index-1], s.TagIconPairs[index] = s.TagIconPairs[index], s.TagIconPairs[index-1]
	return nil
}

// MoveDown swaps the pair at the given zero-based index with its successor.
func (s *Settings) MoveDown(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if index == len(s.TagIconPairs)-1 {
		return errors.New(errors.ErrInvalidInput, "pair is already last")
	}
	s.TagIconPairs[index], s.TagIconPairs[index+1] = s.TagIconPairs[index+1], s.TagIconPairs[index]
	return nil
}

// Replace validates the pair and stores it at the given zero-based index.
func (s *Settings) Replace(index int, pair TagIconPair) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if err := pair.Validate(); err != nil {
		return err
	}
	s.TagIconPairs[index] = pair
	return nil
}

// Validate checks every pair. The settings file is hand-editable, so
// loaded settings are not trusted to be well formed.
func (s *Settings) Validate() error {
	for i, p := range s.TagIconPairs {
		if err := p.Validate(); err != nil {
			return errors.Wrapf(err, errors.GetErrorCode(err), "pair %d is invalid", i+1)
		}
	}
	return nil
}

func (s *Settings) checkIndex(index int) error {
	if index < 0 || index >= len(s.TagIconPairs) {
		return errors.Newf(errors.ErrIndexOutOfRange, "index %d out of range, have %d pairs", index+1, len(s.TagIconPairs))
	}
	return nil
}
