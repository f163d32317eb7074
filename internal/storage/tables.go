package storage

// Names of the row sets the application persists.
const (
	UsersTable        = "users"
	CommunitiesTable  = "communities"
	ProfilesTable     = "user_profiles"
	RidesTable        = "rides"
	ReservationsTable = "reservations"
	MessagesTable     = "messages"
	EvaluationsTable  = "evaluations"
)
