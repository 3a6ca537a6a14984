package conversation

import "strings"

// sectionBreak is the delimiter the frontend splits composite responses on.
const sectionBreak = "<section_break>"

// FormatSections joins content sections with the frontend's section
// delimiter. Pure, total, order-preserving.
func FormatSections(sections []string) string {
	kept := make([]string, 0, len(sections))
	for _, section := range sections {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}
		kept = append(kept, section)
	}
	return strings.Join(kept, sectionBreak)
}
