// Package render projects a lesson plan into printable documents. Every
// renderer is a pure function of the plan.
package render

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/splanner/internal/domain"
)

// Fixed texts of the Vietnamese lesson plan layout.
const (
	docTitle           = "KẾ HOẠCH BÀI DẠY"
	sectionGoals       = "I. MỤC TIÊU"
	sectionEquipment   = "II. THIẾT BỊ DẠY HỌC VÀ HỌC LIỆU"
	sectionProcess     = "III. TIẾN TRÌNH DẠY HỌC"
	headingStartup     = "1. HOẠT ĐỘNG KHỞI ĐỘNG"
	headingFormation   = "2. HÌNH THÀNH KIẾN THỨC MỚI"
	headingPractice    = "3. HOẠT ĐỘNG LUYỆN TẬP"
	headingApplication = "4. HOẠT ĐỘNG VẬN DỤNG"

	startupContent    = "HS quan sát, thực hiện nhiệm vụ."
	startupProduct    = "Câu trả lời của HS."
	fallbackExecution = "HS hoạt động cá nhân/nhóm."
	fallbackReport    = "GV gọi HS đại diện trả lời."

	signLeft  = "DUYỆT CỦA TỔ TRƯỞNG"
	signRight = "GIÁO VIÊN BỘ MÔN"
	signHint  = "(Ký tên)"
)

var stepLabels = [4]string{
	"Bước 1: Chuyển giao",
	"Bước 2: Thực hiện",
	"Bước 3: Báo cáo",
	"Bước 4: Kết luận",
}

type step struct {
	Label string
	Text  string
}

type grid struct {
	Heads [2]string
	Left  []step
	Right string
}

type formation struct {
	Heading   string
	Objective string
	Table     grid
}

// document is the rendered view shared by all output formats.
type document struct {
	HeaderLeft  []string
	HeaderRight []string
	Title       string
	Subtitle    []string

	Knowledge []string
	Math      string
	General   string
	Digital   []string
	Qualities string

	Equipment string

	StartupObjective string
	StartupContent   string
	StartupProduct   string
	StartupSteps     []step

	Formation   []formation
	Practice    grid
	Application grid

	Signatures [2]string
	SignHint   string
}

func buildDocument(plan domain.LessonPlan) document {
	p := plan.Clone()
	p.Normalize()
	acts := p.Activities

	d := document{
		HeaderLeft:  []string{p.School, "Tổ: " + p.Department},
		HeaderRight: []string{docTitle, "Họ tên giáo viên: " + p.TeacherName},
		Title:       "TÊN BÀI DẠY: " + strings.ToUpper(p.LessonName),
		Subtitle: []string{
			fmt.Sprintf("Môn học: %s; Lớp: %s", p.Subject, p.Grade),
			"Thời gian thực hiện: " + p.Duration,
		},
		Knowledge: p.Goals.Knowledge,
		Math:      p.Goals.Competencies.Math,
		General:   p.Goals.Competencies.General,
		Qualities: strings.Join(p.Goals.Qualities, ", ") + ".",
		Equipment: p.Equipment,

		StartupObjective: acts.Startup.Objective,
		StartupContent:   startupContent,
		StartupProduct:   startupProduct,
		StartupSteps: []step{
			{stepLabels[0], acts.Startup.Steps.Instruction},
			{stepLabels[1], orDefault(acts.Startup.Steps.Execution, fallbackExecution)},
			{stepLabels[2], orDefault(acts.Startup.Steps.Discussion, fallbackReport)},
			{stepLabels[3], acts.Startup.Steps.Conclusion},
		},

		Practice: grid{
			Heads: [2]string{"TỔ CHỨC THỰC HIỆN", "SẢN PHẨM DỰ KIẾN"},
			Left: []step{
				{Text: acts.Practice.Steps.Instruction},
				{Label: "Tổ chức", Text: acts.Practice.Steps.Execution},
			},
			Right: acts.Practice.ExpectedProduct,
		},
		Application: grid{
			Heads: [2]string{"NHIỆM VỤ GIAO VỀ NHÀ", "SẢN PHẨM MONG ĐỢI"},
			Left:  []step{{Text: acts.Application.Steps.Instruction}},
			Right: acts.Application.ExpectedProduct,
		},

		Signatures: [2]string{signLeft, signRight},
		SignHint:   signHint,
	}

	for _, dc := range p.Goals.Competencies.Digital {
		d.Digital = append(d.Digital, fmt.Sprintf("Mã %s – %s: %s", dc.Code, dc.Name, dc.Action))
	}

	for i, act := range acts.KnowledgeFormation {
		d.Formation = append(d.Formation, formation{
			Heading:   fmt.Sprintf("Hoạt động %d: %s", i+1, act.Title),
			Objective: act.Objective,
			Table: grid{
				Heads: [2]string{"HĐ CỦA GV VÀ HS", "SẢN PHẨM DỰ KIẾN"},
				Left: []step{
					{stepLabels[0], act.Steps.Instruction},
					{stepLabels[1], act.Steps.Execution},
					{stepLabels[2], act.Steps.Discussion},
					{stepLabels[3], act.Steps.Conclusion},
				},
				Right: act.ExpectedProduct,
			},
		})
	}
	return d
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
