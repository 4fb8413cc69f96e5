package board

import "strings"

// sectionSeparator joins consecutive sections on one page.
const sectionSeparator = "\n\n"

// TextTitles names the first page and its continuations in text mode.
type TextTitles struct {
	Primary      string
	Continuation string
}

// PackSections greedily packs section blocks into pages bounded by
// maxChars. A section is atomic: when appending it would exceed the budget
// the current page is closed and the section starts the next one. A single
// section longer than the budget is still emitted alone, never truncated or
// split. Packing zero sections yields exactly one placeholder page.
func PackSections(sections []string, titles TextTitles, maxChars int, emptyBody string) []Page {
	var pages []Page
	var buf strings.Builder

	titleFor := func() string {
		if len(pages) == 0 {
			return titles.Primary
		}
		return titles.Continuation
	}

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		pages = append(pages, Page{
			Title:       titleFor(),
			Description: strings.TrimSpace(buf.String()),
		})
		buf.Reset()
	}

	for _, section := range sections {
		if section == "" {
			continue
		}
		needed := len(section)
		if buf.Len() > 0 {
			needed += len(sectionSeparator)
		}
		if buf.Len() > 0 && buf.Len()+needed > maxChars {
			flush()
		}
		if buf.Len() > 0 {
			buf.WriteString(sectionSeparator)
		}
		buf.WriteString(section)
	}
	flush()

	if len(pages) == 0 {
		pages = append(pages, Page{Title: titles.Primary, Description: emptyBody})
	}
	return pages
}

// PackFieldGroups packs atomic field groups into pages bounded by a group
// count derived from maxFields and the group size. A group's fields always
// land on the same page. Packing zero groups yields exactly one placeholder
// page. Field mode reuses one title and subtitle for every page.
func PackFieldGroups(groups []FieldGroup, title, subtitle string, maxFields, fieldsPerGroup int, emptyBody string) []Page {
	if len(groups) == 0 {
		return []Page{{Title: title, Description: emptyBody}}
	}

	groupsPerPage := maxFields / fieldsPerGroup
	if groupsPerPage < 1 {
		groupsPerPage = 1
	}

	var pages []Page
	for start := 0; start < len(groups); start += groupsPerPage {
		end := start + groupsPerPage
		if end > len(groups) {
			end = len(groups)
		}

		page := Page{Title: title, Description: subtitle}
		for _, group := range groups[start:end] {
			page.Fields = append(page.Fields, group.Fields...)
		}
		pages = append(pages, page)
	}
	return pages
}
