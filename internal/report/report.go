// Package report writes meeting-notes documents for processed audio. It is
// a front-end concern: the core pipeline itself persists nothing.
package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Calibri"
	fontSize = 11
)

var (
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumberd = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

// Notes holds the text artifacts of one pipeline run.
type Notes struct {
	Title       string
	Transcript  string
	Summary     string
	ActionItems string
}

// Write renders the notes into a styled docx file at outputPath. Empty
// sections are skipped.
func Write(n Notes, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), n.Title, true, 16)
	addStyledRun(doc.AddParagraph(""), time.Now().Format("2006-01-02 15:04"), false, fontSize)

	addSection(doc, "Summary", n.Summary)
	addSection(doc, "Action Items", n.ActionItems)
	addSection(doc, "Transcript", n.Transcript)

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func addSection(doc *docx.RootDoc, heading, content string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}

	doc.AddParagraph("")
	addStyledRun(doc.AddParagraph(""), heading, true, 13)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		p := doc.AddParagraph("")
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(p, "• "+m[1], false, fontSize)
			continue
		}
		if m := reNumberd.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(p, trimmed, false, fontSize)
			continue
		}
		addStyledRun(p, trimmed, false, fontSize)
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
