package constants

const (
	// MaxSkillsPerUser caps how many skills a user may hold at once.
	MaxSkillsPerUser = 3

	// MinPasswordLength is the minimum accepted password length at signup.
	MinPasswordLength = 8

	// SessionCookieName names the session cookie.
	SessionCookieName = "collab_session"

	// ContextKeyUserID is the gin context / session key for the user id.
	ContextKeyUserID = "user_id"

	// ContextKeyProject is the gin context key for the preloaded project.
	ContextKeyProject = "project"

	// Pagination defaults for list endpoints.
	MinPage         = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
