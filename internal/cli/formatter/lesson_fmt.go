package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/splanner/internal/domain"
)

// FormatLessonSummary renders a short overview of a plan: identity, goal
// counts and one line per formation activity.
func FormatLessonSummary(plan domain.LessonPlan) string {
	var b strings.Builder

	b.WriteString(Header(plan.LessonName))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s   %s %s   %s %s\n",
		Dim("Môn:"), plan.Subject,
		Dim("Lớp:"), plan.Grade,
		Dim("Thời lượng:"), plan.Duration)
	fmt.Fprintf(&b, "%s %d   %s %d   %s %d\n",
		Dim("Kiến thức:"), len(plan.Goals.Knowledge),
		Dim("Năng lực số:"), len(plan.Goals.Competencies.Digital),
		Dim("Phẩm chất:"), len(plan.Goals.Qualities))

	acts := plan.Activities.KnowledgeFormation
	if len(acts) == 0 {
		b.WriteString(Dim("Chưa có hoạt động hình thành kiến thức.") + "\n")
		return b.String()
	}
	b.WriteString("\n")
	for i, a := range acts {
		fmt.Fprintf(&b, "  %s %s %s\n", StyleIndigo.Render(fmt.Sprintf("%d.", i+1)), a.Title, Dim("("+a.ID+")"))
	}
	return b.String()
}

// FormatHistory renders generation attempts as a table, newest first.
func FormatHistory(records []*domain.GenerationRecord, now time.Time) string {
	if len(records) == 0 {
		return Dim("Chưa có lần tạo giáo án nào.") + "\n"
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		topic := r.Topic
		if len([]rune(topic)) > 40 {
			topic = string([]rune(topic)[:39]) + "…"
		}
		code := r.ErrorCode
		if code == "" {
			code = "-"
		}
		rows = append(rows, []string{
			HumanTimestampFrom(r.CreatedAt, now),
			topic,
			r.Grade,
			StatusPill(r.Status),
			code,
			FormatLatency(r.LatencyMs),
			r.Model,
		})
	}
	return RenderTable([]string{"THỜI GIAN", "CHỦ ĐỀ", "LỚP", "KẾT QUẢ", "MÃ LỖI", "THỜI LƯỢNG", "MODEL"}, rows)
}

// FormatCredentialStatus describes the credential in use without revealing
// the key.
func FormatCredentialStatus(c *domain.Credential) string {
	if c == nil {
		return StyleYellow.Render("● Chưa có API Key") + "\n" +
			Dim("Chạy `splanner key set` hoặc đặt biến GEMINI_API_KEY.") + "\n"
	}
	source := "đã lưu"
	if c.Source == domain.CredentialFromEnv {
		source = "biến môi trường"
	}
	label := c.Label
	if label == "" {
		label = "-"
	}
	return fmt.Sprintf("%s\n  %s %s\n  %s %s\n  %s %s\n",
		StyleGreen.Render("● API Key khả dụng"),
		Dim("Nguồn:"), source,
		Dim("Nhãn:"), label,
		Dim("Khóa:"), c.MaskedKey())
}
