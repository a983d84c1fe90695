package render

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/splanner/internal/domain"
)

// RenderMarkdown renders the plan as a markdown document.
func RenderMarkdown(plan domain.LessonPlan) string {
	d := buildDocument(plan)
	var b strings.Builder

	for _, l := range d.HeaderLeft {
		fmt.Fprintf(&b, "**%s**  \n", mdEscape(l))
	}
	for _, l := range d.HeaderRight {
		fmt.Fprintf(&b, "**%s**  \n", mdEscape(l))
	}
	fmt.Fprintf(&b, "\n# %s\n\n", mdEscape(d.Title))
	for _, l := range d.Subtitle {
		fmt.Fprintf(&b, "*%s*  \n", mdEscape(l))
	}

	fmt.Fprintf(&b, "\n## %s\n\n", sectionGoals)
	b.WriteString("**1. Kiến thức:**\n\n")
	for _, k := range d.Knowledge {
		fmt.Fprintf(&b, "- %s\n", mdEscape(k))
	}
	b.WriteString("\n**2. Năng lực:**\n\n")
	fmt.Fprintf(&b, "- Năng lực riêng: %s\n", mdEscape(d.Math))
	fmt.Fprintf(&b, "- Năng lực chung: %s\n", mdEscape(d.General))
	b.WriteString("- ***Năng lực số (CV 3456):***\n")
	for _, dc := range d.Digital {
		fmt.Fprintf(&b, "  - %s\n", mdEscape(dc))
	}
	fmt.Fprintf(&b, "\n**3. Phẩm chất:** %s\n", mdEscape(d.Qualities))

	fmt.Fprintf(&b, "\n## %s\n\n%s\n", sectionEquipment, mdEscape(d.Equipment))

	fmt.Fprintf(&b, "\n## %s\n\n### %s\n\n", sectionProcess, headingStartup)
	fmt.Fprintf(&b, "a) Mục tiêu: %s  \n", mdEscape(d.StartupObjective))
	fmt.Fprintf(&b, "b) Nội dung: %s  \n", d.StartupContent)
	fmt.Fprintf(&b, "c) Sản phẩm: %s  \n", d.StartupProduct)
	b.WriteString("d) Tổ chức thực hiện:\n\n")
	for _, s := range d.StartupSteps {
		fmt.Fprintf(&b, "- **%s:** %s\n", s.Label, mdEscape(s.Text))
	}

	fmt.Fprintf(&b, "\n### %s\n", headingFormation)
	for _, f := range d.Formation {
		fmt.Fprintf(&b, "\n***%s***\n\n", mdEscape(f.Heading))
		fmt.Fprintf(&b, "a) Mục tiêu: %s  \n", mdEscape(f.Objective))
		b.WriteString("d) Tổ chức thực hiện:\n\n")
		writeMarkdownGrid(&b, f.Table)
	}

	fmt.Fprintf(&b, "\n### %s\n\n", headingPractice)
	writeMarkdownGrid(&b, d.Practice)
	fmt.Fprintf(&b, "\n### %s\n\n", headingApplication)
	writeMarkdownGrid(&b, d.Application)

	fmt.Fprintf(&b, "\n| %s | %s |\n|:---:|:---:|\n| %s | %s |\n",
		d.Signatures[0], d.Signatures[1], d.SignHint, d.SignHint)
	return b.String()
}

func writeMarkdownGrid(b *strings.Builder, g grid) {
	parts := make([]string, 0, len(g.Left))
	for _, s := range g.Left {
		if s.Label == "" {
			parts = append(parts, cellEscape(s.Text))
			continue
		}
		parts = append(parts, "**"+s.Label+":** "+cellEscape(s.Text))
	}
	fmt.Fprintf(b, "| %s | %s |\n|---|---|\n| %s | %s |\n",
		g.Heads[0], g.Heads[1], strings.Join(parts, "<br>"), cellEscape(g.Right))
}

var mdReplacer = strings.NewReplacer(`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`")

func mdEscape(s string) string {
	return mdReplacer.Replace(s)
}

// cellEscape also keeps the text on one table row.
func cellEscape(s string) string {
	s = mdEscape(s)
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "<br>")
}
