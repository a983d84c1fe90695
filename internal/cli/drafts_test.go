package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/splanner/internal/domain"
	"github.com/alexanderramin/splanner/internal/planfile"
	"github.com/alexanderramin/splanner/internal/testutil"
)

func TestInfoDraft_Apply(t *testing.T) {
	plan := testutil.NewTestLessonPlan()
	d := newInfoDraft(plan)
	d.School = "THCS Lê Lợi"
	d.Grade = "7"

	got, err := d.apply(plan)
	require.NoError(t, err)
	assert.Equal(t, "THCS Lê Lợi", got.School)
	assert.Equal(t, "7", got.Grade)
	assert.Equal(t, plan.TeacherName, got.TeacherName)
	assert.Equal(t, "THCS Nguyễn Du", plan.School, "source plan must not change")
}

func TestGoalsDraft_ParsesLists(t *testing.T) {
	plan := testutil.NewTestLessonPlan()
	d := newGoalsDraft(plan)
	d.Knowledge = "  Nhận biết số nguyên\n\nCộng hai số nguyên\n"
	d.Qualities = "Chăm chỉ, Trung thực ,  "

	got, err := d.apply(plan)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nhận biết số nguyên", "Cộng hai số nguyên"}, got.Goals.Knowledge)
	assert.Equal(t, []string{"Chăm chỉ", "Trung thực"}, got.Goals.Qualities)
	assert.Len(t, plan.Goals.Knowledge, 2)
}

func TestGoalsDraft_RoundTripsUnchanged(t *testing.T) {
	plan := testutil.NewTestLessonPlan()

	got, err := newGoalsDraft(plan).apply(plan)
	require.NoError(t, err)
	assert.Equal(t, plan.Goals, got.Goals)
	assert.Equal(t, plan.Equipment, got.Equipment)
}

func TestActivityDraft_FormationByID(t *testing.T) {
	plan := testutil.NewTestLessonPlan(testutil.WithFormationActivities(3))

	d, err := newActivityDraft(plan, domain.RoleFormation, "form-test-1")
	require.NoError(t, err)
	assert.Equal(t, "Hoạt động 2", d.Title)
	d.Title = "So sánh phân số"
	d.ExpectedProduct = "Bảng so sánh"

	got, err := d.apply(plan)
	require.NoError(t, err)
	acts := got.Activities.KnowledgeFormation
	require.Len(t, acts, 3)
	assert.Equal(t, "Hoạt động 1", acts[0].Title)
	assert.Equal(t, "So sánh phân số", acts[1].Title)
	assert.Equal(t, "Bảng so sánh", acts[1].ExpectedProduct)
	assert.Equal(t, "form-test-1", acts[1].ID)
	assert.Equal(t, "Hoạt động 3", acts[2].Title)
}

func TestActivityDraft_Startup(t *testing.T) {
	plan := testutil.NewTestLessonPlan()

	d, err := newActivityDraft(plan, domain.RoleStartup, "")
	require.NoError(t, err)
	d.Conclusion = "GV chốt kiến thức"

	got, err := d.apply(plan)
	require.NoError(t, err)
	assert.Equal(t, "GV chốt kiến thức", got.Activities.Startup.Steps.Conclusion)
	assert.Equal(t, plan.Activities.Startup.Objective, got.Activities.Startup.Objective)
}

func TestActivityDraft_UnknownFormation(t *testing.T) {
	plan := testutil.NewTestLessonPlan(testutil.WithFormationActivities(1))

	_, err := newActivityDraft(plan, domain.RoleFormation, "missing")
	assert.Error(t, err)
}

func TestActivityDraft_ActivityRemovedWhileOpen(t *testing.T) {
	plan := testutil.NewTestLessonPlan(testutil.WithFormationActivities(2))
	d, err := newActivityDraft(plan, domain.RoleFormation, "form-test-0")
	require.NoError(t, err)

	removed, err := domain.RemoveFormationActivity(plan, "form-test-0")
	require.NoError(t, err)

	_, err = d.apply(removed)
	assert.Error(t, err)
}

func TestFormationPicker(t *testing.T) {
	var id string
	assert.Nil(t, formationPicker(testutil.NewTestLessonPlan(), &id))

	plan := testutil.NewTestLessonPlan(testutil.WithFormationActivities(2))
	assert.NotNil(t, formationPicker(plan, &id))
	assert.Equal(t, "form-test-0", id)
}

func TestSectionEdit(t *testing.T) {
	plan := testutil.NewTestLessonPlan(testutil.WithFormationActivities(1))

	for _, section := range []string{"info", "goals", "startup", "practice", "application"} {
		edit, err := sectionEdit(plan, section, "")
		require.NoError(t, err, section)
		assert.NotNil(t, edit.form, section)
		assert.NotNil(t, edit.apply, section)
	}

	_, err := sectionEdit(plan, "formation", "form-test-0")
	require.NoError(t, err)

	_, err = sectionEdit(plan, "homework", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown section")
}

func TestRenderPlan_JSONDecodesBack(t *testing.T) {
	plan := testutil.NewTestLessonPlan(testutil.WithFormationActivities(2))

	data, err := renderPlan(plan, formatJSON, 0)
	require.NoError(t, err)

	got, err := planfile.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, plan.LessonName, got.LessonName)
	assert.Len(t, got.Activities.KnowledgeFormation, 2)
}
