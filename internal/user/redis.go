package user

// Redis keys owned by the user module.
const (
	// KnownUsersKey is a Set used to check whether a UUID belongs to a
	// persisted profile without hitting the database.
	// Key: known_users
	// Member: profile UUID
	KnownUsersKey = "known_users"
)
