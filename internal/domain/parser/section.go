package parser

import (
	"regexp"
	"strings"

	"github.com/diillson/aws-sso-launcher-go/internal/domain/entity"
)

var (
	sectionHeaderPattern = regexp.MustCompile(`^\[([^\]]+)\]$`)
	fieldPattern         = regexp.MustCompile(`^([^=]+)=(.*)$`)
)

// ParseSections tokenizes configuration text into an ordered list of named
// sections. Blank lines and full-line `#` comments are skipped; a repeated
// section name replaces the earlier section's fields but keeps its original
// position. Lines that are neither headers nor `key = value` pairs, and
// field lines before any header, are dropped without error to tolerate
// hand-edited text. No semantic validation happens here.
func ParseSections(text string) []*entity.Section {
	sections := make(map[string]*entity.Section)
	var order []string
	var current *entity.Section
	lineNumber := 0

	for _, line := range strings.Split(text, "\n") {
		lineNumber++
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if match := sectionHeaderPattern.FindStringSubmatch(trimmed); match != nil {
			name := strings.TrimSpace(match[1])
			current = &entity.Section{
				Name:       name,
				Fields:     entity.NewFields(),
				SourceLine: lineNumber,
			}
			if _, seen := sections[name]; !seen {
				order = append(order, name)
			}
			sections[name] = current
			continue
		}

		if match := fieldPattern.FindStringSubmatch(trimmed); match != nil && current != nil {
			key := strings.TrimSpace(match[1])
			value := strings.TrimSpace(match[2])
			current.Fields.SetAt(key, value, lineNumber)
		}
	}

	result := make([]*entity.Section, 0, len(order))
	for _, name := range order {
		result = append(result, sections[name])
	}
	return result
}
