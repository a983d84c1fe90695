package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/splanner/internal/domain"
)

func str(s string) *string { return &s }

func editedPlan() domain.LessonPlan {
	p := domain.DefaultLessonPlan()
	p.Equipment = "Y"
	p.Goals.Competencies.General = "G"
	p.Goals.Knowledge = []string{"old"}
	p.Activities.Startup.Content = "startup content"
	p.Activities.Startup.ExpectedProduct = "startup product"
	p.Activities.Practice.Title = "Luyện tập tại lớp"
	p.Activities.KnowledgeFormation = []domain.Activity{
		{ID: "form-user", Title: "Hoạt động 1", Objective: "user authored"},
	}
	return p
}

func TestMergeGenerated_KnowledgeAndStartupWithEquipmentPreserved(t *testing.T) {
	current := editedPlan()
	gen := &PartialContent{
		Knowledge: []string{"X"},
		Startup:   &StartupContent{Objective: str("O")},
	}

	out := MergeGenerated(current, gen, "Phân số", "6", "Toán")

	assert.Equal(t, []string{"X"}, out.Goals.Knowledge)
	assert.Equal(t, "O", out.Activities.Startup.Objective)
	assert.Equal(t, "Y", out.Equipment)
	assert.Equal(t, "Phân số", out.LessonName)
	assert.Equal(t, "6", out.Grade)
	assert.Equal(t, "Toán", out.Subject)
	assert.Equal(t, domain.Steps{}, out.Activities.Startup.Steps)
}

func TestMergeGenerated_EmptyPayloadFallbacks(t *testing.T) {
	current := editedPlan()

	out := MergeGenerated(current, &PartialContent{}, "T", "7", "Ngữ văn")

	assert.Equal(t, []string{}, out.Goals.Knowledge)
	assert.Equal(t, []string{}, out.Goals.Qualities)
	assert.Equal(t, []domain.DigitalCompetency{}, out.Goals.Competencies.Digital)
	assert.Equal(t, "", out.Goals.Competencies.Math)
	assert.Equal(t, "G", out.Goals.Competencies.General)
	assert.Equal(t, "Y", out.Equipment)
	assert.Equal(t, []domain.Activity{}, out.Activities.KnowledgeFormation)
	assert.Equal(t, "", out.Activities.Startup.Objective)
	assert.Equal(t, "", out.Activities.Practice.Objective)
	assert.Equal(t, "", out.Activities.Practice.Steps.Instruction)
	assert.Equal(t, domain.PracticeSteps.Execution, out.Activities.Practice.Steps.Execution)
	assert.Equal(t, domain.ApplicationSteps.Conclusion, out.Activities.Application.Steps.Conclusion)
}

func TestMergeGenerated_NilPayloadMatchesEmpty(t *testing.T) {
	current := editedPlan()
	assert.Equal(t,
		MergeGenerated(current, &PartialContent{}, "T", "7", "S"),
		MergeGenerated(current, nil, "T", "7", "S"))
}

func TestMergeGenerated_EmptyEquipmentKeepsCurrent(t *testing.T) {
	out := MergeGenerated(editedPlan(), &PartialContent{Equipment: str("")}, "T", "6", "Toán")
	assert.Equal(t, "Y", out.Equipment)

	out = MergeGenerated(editedPlan(), &PartialContent{Equipment: str("Bảng phụ")}, "T", "6", "Toán")
	assert.Equal(t, "Bảng phụ", out.Equipment)
}

func TestMergeGenerated_SingleFormationEntryGetsCannedSteps(t *testing.T) {
	gen := &PartialContent{
		Formation: []FormationContent{{Title: str("A"), Instruction: str("I")}},
	}

	out := MergeGenerated(editedPlan(), gen, "T", "6", "Toán")

	require.Len(t, out.Activities.KnowledgeFormation, 1)
	f := out.Activities.KnowledgeFormation[0]
	assert.Equal(t, "form-0", f.ID)
	assert.Equal(t, "A", f.Title)
	assert.Equal(t, "", f.Objective)
	assert.Equal(t, "", f.ExpectedProduct)
	assert.Equal(t, domain.Steps{
		Instruction: "I",
		Execution:   "HS làm việc theo yêu cầu",
		Discussion:  "Đại diện nhóm báo cáo",
		Conclusion:  "GV chốt kiến thức",
	}, f.Steps)
}

func TestMergeGenerated_FormationReplacesUserActivities(t *testing.T) {
	gen := &PartialContent{
		Formation: []FormationContent{{Title: str("A")}, {Title: str("B")}},
	}

	out := MergeGenerated(editedPlan(), gen, "T", "6", "Toán")

	require.Len(t, out.Activities.KnowledgeFormation, 2)
	assert.Equal(t, "form-0", out.Activities.KnowledgeFormation[0].ID)
	assert.Equal(t, "form-1", out.Activities.KnowledgeFormation[1].ID)
	for _, a := range out.Activities.KnowledgeFormation {
		assert.NotEqual(t, "form-user", a.ID)
	}
}

func TestMergeGenerated_PreservesSingletonIdentity(t *testing.T) {
	gen := &PartialContent{
		Startup:     &StartupContent{Objective: str("O"), Execution: str("E")},
		Practice:    &PhaseContent{Objective: str("P"), Instruction: str("PI"), ExpectedProduct: str("PP")},
		Application: &PhaseContent{Instruction: str("AI")},
	}

	out := MergeGenerated(editedPlan(), gen, "T", "6", "Toán")

	st := out.Activities.Startup
	assert.Equal(t, "startup", st.ID)
	assert.Equal(t, "Khởi động", st.Title)
	assert.Equal(t, "startup content", st.Content)
	assert.Equal(t, "startup product", st.ExpectedProduct)
	assert.Equal(t, "E", st.Steps.Execution)

	pr := out.Activities.Practice
	assert.Equal(t, "practice", pr.ID)
	assert.Equal(t, "Luyện tập tại lớp", pr.Title)
	assert.Equal(t, "P", pr.Objective)
	assert.Equal(t, "PP", pr.ExpectedProduct)
	assert.Equal(t, domain.Steps{Instruction: "PI", Execution: "HS làm bài cá nhân", Discussion: "Đổi chéo kiểm tra", Conclusion: "GV nhận xét"}, pr.Steps)

	ap := out.Activities.Application
	assert.Equal(t, "application", ap.ID)
	assert.Equal(t, domain.Steps{Instruction: "AI", Execution: "Thực hiện tại nhà", Discussion: "Báo cáo vào tiết sau", Conclusion: "GV đánh giá"}, ap.Steps)
}

func TestMergeGenerated_DigitalCompetenciesGetIDs(t *testing.T) {
	gen := &PartialContent{
		DigitalCompetencies: []DigitalCompetencyContent{
			{Code: str("1.1"), Name: str("Khai thác dữ liệu"), Action: str("Tìm kiếm thông tin")},
			{Code: str("3.2")},
		},
	}

	out := MergeGenerated(editedPlan(), gen, "T", "6", "Toán")

	require.Len(t, out.Goals.Competencies.Digital, 2)
	assert.Equal(t, domain.DigitalCompetency{ID: "dc-0", Code: "1.1", Name: "Khai thác dữ liệu", Action: "Tìm kiếm thông tin"}, out.Goals.Competencies.Digital[0])
	assert.Equal(t, domain.DigitalCompetency{ID: "dc-1", Code: "3.2"}, out.Goals.Competencies.Digital[1])
	assert.NoError(t, out.Validate())
}

func TestMergeGenerated_DoesNotMutateInput(t *testing.T) {
	current := editedPlan()
	snapshot := current.Clone()
	gen := &PartialContent{
		Knowledge:   []string{"X"},
		Qualities:   []string{"Q"},
		Equipment:   str("E"),
		Startup:     &StartupContent{Objective: str("O")},
		Formation:   []FormationContent{{Title: str("A")}},
		Practice:    &PhaseContent{Objective: str("P")},
		Application: &PhaseContent{Objective: str("A")},
	}

	out := MergeGenerated(current, gen, "T", "8", "Lý")
	out.Goals.Knowledge[0] = "mutated"

	assert.Equal(t, snapshot, current)
	assert.Equal(t, []string{"X"}, gen.Knowledge)
}

func TestMergeGenerated_Deterministic(t *testing.T) {
	gen := &PartialContent{Knowledge: []string{"X"}, Formation: []FormationContent{{Title: str("A")}}}
	a := MergeGenerated(editedPlan(), gen, "T", "6", "Toán")
	b := MergeGenerated(editedPlan(), gen, "T", "6", "Toán")
	assert.Equal(t, a, b)
}
