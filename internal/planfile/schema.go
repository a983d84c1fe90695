// Package planfile reads and writes lesson plan documents.
package planfile

// Format and Version identify a lesson plan document.
const (
	Format  = "splanner/lesson"
	Version = 1
)

// Document is the top-level JSON structure of a plan file.
type Document struct {
	Format  string    `json:"format"`
	Version int       `json:"version"`
	Lesson  LessonDoc `json:"lesson"`
}

// LessonDoc is the JSON form of a lesson plan.
type LessonDoc struct {
	School      string        `json:"school"`
	Department  string        `json:"department"`
	TeacherName string        `json:"teacherName"`
	LessonName  string        `json:"lessonName"`
	Subject     string        `json:"subject"`
	Grade       string        `json:"grade"`
	Duration    string        `json:"duration"`
	Goals       GoalsDoc      `json:"goals"`
	Equipment   string        `json:"equipment"`
	Activities  ActivitiesDoc `json:"activities"`
}

type GoalsDoc struct {
	Knowledge    []string        `json:"knowledge"`
	Competencies CompetenciesDoc `json:"competencies"`
	Qualities    []string        `json:"qualities"`
}

type CompetenciesDoc struct {
	Math    string                 `json:"math"`
	General string                 `json:"general"`
	Digital []DigitalCompetencyDoc `json:"digital"`
}

type DigitalCompetencyDoc struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Action string `json:"action"`
}

type StepsDoc struct {
	Instruction string `json:"instruction"`
	Execution   string `json:"execution"`
	Discussion  string `json:"discussion"`
	Conclusion  string `json:"conclusion"`
}

type ActivityDoc struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Objective       string   `json:"objective"`
	Content         string   `json:"content"`
	Product         string   `json:"product"`
	Steps           StepsDoc `json:"steps"`
	ExpectedProduct string   `json:"expectedProduct"`
}

type ActivitiesDoc struct {
	Startup            ActivityDoc   `json:"startup"`
	KnowledgeFormation []ActivityDoc `json:"knowledgeFormation"`
	Practice           ActivityDoc   `json:"practice"`
	Application        ActivityDoc   `json:"application"`
}
