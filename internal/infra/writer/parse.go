package writer

import (
	"strings"

	"blogsmith/internal/domain/entity"
)

// Section labels the synthesis prompt asks for.
const (
	labelTitle = "TITLE"
	labelMeta  = "META"
	labelBody  = "BODY"
)

var sectionLabels = []string{labelTitle, labelMeta, labelBody}

// ParsePost decomposes a raw model response into the three post fields.
// The prompt asks for TITLE:, META:, and BODY: sections, but models decorate
// labels with markdown headings or bold markers often enough that matching
// tolerates them. A missing or empty section is a ParseError naming the
// section; text before the first label is ignored.
func ParsePost(raw string) (*entity.Post, error) {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	sections := splitSections(trimFence(normalized))

	title := strings.TrimSpace(sections[labelTitle])
	if title == "" {
		return nil, &entity.ParseError{Section: "title"}
	}

	meta := strings.TrimSpace(sections[labelMeta])
	if meta == "" {
		return nil, &entity.ParseError{Section: "meta description"}
	}

	body := strings.TrimSpace(sections[labelBody])
	if body == "" {
		return nil, &entity.ParseError{Section: "body"}
	}

	return &entity.Post{
		Title:           title,
		MetaDescription: meta,
		PostContent:     body,
	}, nil
}

// splitSections walks the response line by line, routing text into the
// section whose label most recently appeared.
func splitSections(raw string) map[string]string {
	builders := map[string]*strings.Builder{
		labelTitle: {},
		labelMeta:  {},
		labelBody:  {},
	}

	current := ""
	for _, line := range strings.Split(raw, "\n") {
		matched := false
		for _, label := range sectionLabels {
			rest, ok := matchLabel(line, label)
			if !ok {
				continue
			}
			current = label
			if rest != "" {
				builders[label].WriteString(rest)
				builders[label].WriteString("\n")
			}
			matched = true
			break
		}
		if matched || current == "" {
			continue
		}
		builders[current].WriteString(line)
		builders[current].WriteString("\n")
	}

	sections := make(map[string]string, len(builders))
	for label, b := range builders {
		sections[label] = b.String()
	}
	return sections
}

// matchLabel reports whether the line starts a labeled section and returns
// any text following the label on the same line. Matching is
// case-insensitive and tolerates leading whitespace, markdown heading
// prefixes, and bold markers around the label. The colon is required: a bare
// "TITLE" in running text does not start a section.
func matchLabel(line, label string) (string, bool) {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(s, "#")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "**")

	if len(s) < len(label) || !strings.EqualFold(s[:len(label)], label) {
		return "", false
	}
	s = s[len(label):]
	s = strings.TrimPrefix(s, "**")
	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, ":") {
		return "", false
	}
	s = strings.TrimPrefix(s, ":")
	s = strings.TrimPrefix(s, "**")

	return strings.TrimSpace(s), true
}

// trimFence drops a markdown code fence wrapping the whole response. Fences
// inside the body are left alone.
func trimFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return raw
	}

	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return raw
	}
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
