package constants

// Redis key formats
const (
	// Best-effort sets of fulfiller IDs currently marked available, one set
	// per fulfiller type. Postgres stays authoritative; these sets only
	// annotate admin listings.
	KeyAvailableFulfillers = "fulfillers:available:%s" // Format: fulfillers:available:{type}
)
