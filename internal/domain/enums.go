package domain

// ActivityRole names one of the four places an activity can hold in a lesson.
type ActivityRole string

const (
	RoleStartup     ActivityRole = "startup"
	RoleFormation   ActivityRole = "formation"
	RolePractice    ActivityRole = "practice"
	RoleApplication ActivityRole = "application"
)

// ValidActivityRoles is the canonical set of accepted role strings.
var ValidActivityRoles = map[string]bool{
	"startup": true, "formation": true, "practice": true, "application": true,
}

type GenerationStatus string

const (
	GenerationOK                    GenerationStatus = "ok"
	GenerationCredentialUnavailable GenerationStatus = "credential_unavailable"
	GenerationEmptyResponse         GenerationStatus = "empty_response"
	GenerationFailed                GenerationStatus = "failed"
	GenerationRejected              GenerationStatus = "rejected"
)

type CredentialSource string

const (
	CredentialFromEnv    CredentialSource = "env"
	CredentialFromStored CredentialSource = "stored"
	// CredentialNone marks a generation against a provider that takes no key.
	CredentialNone CredentialSource = "none"
)
