// Package hashtag extracts hashtags from free text and renders them in
// two forms: a storage form used for text-match queries (tags with the
// leading '#' stripped, space-joined) and a display form echoed back to
// the caller (tags with '#' retained).
package hashtag

import "strings"

type Hashtags struct {
	Tags        []string
	StorageForm string
	DisplayForm string
}

// FromCaption splits the caption on '#'. Text before the first '#' is
// prose, not a tag. A tag runs from the '#' to the next whitespace, so
// "at the #beach #bonfire tonight" yields beach and bonfire. Repeated
// tags are kept as-is; order is preserved. Never fails: a caption
// without hashtags yields empty forms.
func FromCaption(text string) Hashtags {
	segments := strings.Split(text, "#")
	tags := make([]string, 0, len(segments)-1)
	for _, segment := range segments[1:] {
		fields := strings.Fields(segment)
		if len(fields) == 0 {
			continue
		}
		tags = append(tags, fields[0])
	}
	return fromTags(tags)
}

// FromQuery splits a raw hashtag query string on '#' and drops empty
// tokens. Unlike FromCaption there is no prose prefix: a leading bare
// token is itself a tag, so both "beach#bonfire" and "#beach#bonfire"
// yield the same tag list.
func FromQuery(raw string) Hashtags {
	tokens := strings.Split(raw, "#")
	tags := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		tags = append(tags, token)
	}
	return fromTags(tags)
}

func fromTags(tags []string) Hashtags {
	if len(tags) == 0 {
		return Hashtags{Tags: []string{}}
	}
	display := make([]string, len(tags))
	for i, tag := range tags {
		display[i] = "#" + tag
	}
	return Hashtags{
		Tags:        tags,
		StorageForm: strings.Join(tags, " "),
		DisplayForm: strings.Join(display, " "),
	}
}
