// Package content defines the shape of AI-generated lesson content and the
// rule that merges it into an editable lesson plan.
package content

// PartialContent is the generation payload. Every field is optional: absent
// keys and JSON nulls both decode to nil.
type PartialContent struct {
	Knowledge           []string                   `json:"knowledge,omitempty"`
	MathCompetency      *string                    `json:"mathCompetency,omitempty"`
	DigitalCompetencies []DigitalCompetencyContent `json:"digitalCompetencies,omitempty"`
	Qualities           []string                   `json:"qualities,omitempty"`
	Equipment           *string                    `json:"equipment,omitempty"`
	Startup             *StartupContent            `json:"startup,omitempty"`
	Formation           []FormationContent         `json:"formation,omitempty"`
	Practice            *PhaseContent              `json:"practice,omitempty"`
	Application         *PhaseContent              `json:"application,omitempty"`
}

type DigitalCompetencyContent struct {
	Code   *string `json:"code,omitempty"`
	Name   *string `json:"name,omitempty"`
	Action *string `json:"action,omitempty"`
}

type StartupContent struct {
	Objective   *string `json:"objective,omitempty"`
	Instruction *string `json:"instruction,omitempty"`
	Execution   *string `json:"execution,omitempty"`
	Discussion  *string `json:"discussion,omitempty"`
	Conclusion  *string `json:"conclusion,omitempty"`
}

type FormationContent struct {
	Title           *string `json:"title,omitempty"`
	Objective       *string `json:"objective,omitempty"`
	Instruction     *string `json:"instruction,omitempty"`
	ExpectedProduct *string `json:"expectedProduct,omitempty"`
}

// PhaseContent is the generated part of the practice and application activities.
type PhaseContent struct {
	Objective       *string `json:"objective,omitempty"`
	Instruction     *string `json:"instruction,omitempty"`
	ExpectedProduct *string `json:"expectedProduct,omitempty"`
}
