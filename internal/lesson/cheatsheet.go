package lesson

import (
	"fmt"
	"strings"

	"finlearn_backend/internal/curriculum"
)

// RenderCheatSheet produces the plain-text download for a lesson's
// cheat sheet: title, numbered points, then the daily tip.
func RenderCheatSheet(cs curriculum.CheatSheet) string {
	var b strings.Builder
	b.WriteString(cs.Title)
	for i, p := range cs.Points {
		b.WriteString(fmt.Sprintf("\n\n%d. %s", i+1, p))
	}
	b.WriteString("\n\nDaily Tip: " + cs.DailyTip)
	return b.String()
}

// CheatSheetFilename derives a safe download filename from the title.
func CheatSheetFilename(title string) string {
	slug := strings.ToLower(title)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		}
		return -1
	}, slug)
	slug = strings.Trim(slug, "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	if slug == "" {
		slug = "cheatsheet"
	}
	return slug + "-cheatsheet.txt"
}
