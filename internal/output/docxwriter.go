package output

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reBold      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reParagraph = regexp.MustCompile(`\n\s*\n`)
)

// summaryToDocx writes a title followed by one docx paragraph per
// blank-line separated block of the summary.
func summaryToDocx(title, summary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	for _, block := range splitParagraphs(summary) {
		p := doc.AddParagraph("")
		addRichText(p, block)
	}

	return doc.SaveTo(outputPath)
}

// splitParagraphs breaks text on blank lines and folds the lines of each block into one.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, block := range reParagraph.Split(strings.TrimSpace(text), -1) {
		lines := strings.Fields(block)
		if len(lines) == 0 {
			continue
		}
		paragraphs = append(paragraphs, strings.Join(lines, " "))
	}
	return paragraphs
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			clean := cleanMarkdownInline(part)
			p.AddText(clean).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			clean := cleanMarkdownInline(matches[i][1])
			p.AddText(clean).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
