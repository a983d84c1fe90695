package domain

// Placeholder values of a blank lesson plan.
const (
	PlaceholderSchool     = "[Tên trường]"
	PlaceholderDepartment = "[Tên tổ chuyên môn]"
	PlaceholderTeacher    = "[Họ và tên giáo viên]"
	PlaceholderLesson     = "[Tên bài học]"

	DefaultSubject  = "Toán"
	DefaultGrade    = "6"
	DefaultDuration = "2 tiết"

	DefaultGeneralCompetency = "Tự chủ và tự học, giao tiếp và hợp tác, giải quyết vấn đề và sáng tạo."
	DefaultEquipment         = "SGK, Kế hoạch bài dạy, Máy tính, Tivi/Máy chiếu, Phần mềm (GeoGebra, Azota, Quizizz...), Phiếu học tập."
)

// Fixed ids and titles of the singleton activities.
const (
	StartupID        = "startup"
	StartupTitle     = "Khởi động"
	PracticeID       = "practice"
	PracticeTitle    = "Luyện tập"
	ApplicationID    = "application"
	ApplicationTitle = "Vận dụng"
)

// Canned organisational steps filled in when generated content only supplies
// the instruction for an activity.
var (
	FormationSteps = Steps{
		Execution:  "HS làm việc theo yêu cầu",
		Discussion: "Đại diện nhóm báo cáo",
		Conclusion: "GV chốt kiến thức",
	}
	PracticeSteps = Steps{
		Execution:  "HS làm bài cá nhân",
		Discussion: "Đổi chéo kiểm tra",
		Conclusion: "GV nhận xét",
	}
	ApplicationSteps = Steps{
		Execution:  "Thực hiện tại nhà",
		Discussion: "Báo cáo vào tiết sau",
		Conclusion: "GV đánh giá",
	}
)

// DefaultQualities returns a fresh copy of the default qualities list.
func DefaultQualities() []string {
	return []string{"Chăm chỉ", "Trung thực", "Trách nhiệm"}
}

// DefaultLessonPlan returns the placeholder template a new session starts from.
func DefaultLessonPlan() LessonPlan {
	return LessonPlan{
		School:      PlaceholderSchool,
		Department:  PlaceholderDepartment,
		TeacherName: PlaceholderTeacher,
		LessonName:  PlaceholderLesson,
		Subject:     DefaultSubject,
		Grade:       DefaultGrade,
		Duration:    DefaultDuration,
		Goals: Goals{
			Knowledge: []string{},
			Competencies: Competencies{
				General: DefaultGeneralCompetency,
				Digital: []DigitalCompetency{},
			},
			Qualities: DefaultQualities(),
		},
		Equipment: DefaultEquipment,
		Activities: Activities{
			Startup:            Activity{ID: StartupID, Title: StartupTitle},
			KnowledgeFormation: []Activity{},
			Practice:           Activity{ID: PracticeID, Title: PracticeTitle},
			Application:        Activity{ID: ApplicationID, Title: ApplicationTitle},
		},
	}
}
