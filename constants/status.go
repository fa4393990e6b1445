package constants

// ArtifactStatus is the status column written into the transfer artifact.
type ArtifactStatus string

// Stable values (these exact strings appear in the spreadsheet).
const (
	// ArtifactStatusPending is the only status this service ever writes;
	// later stages of the fulfillment flow own the other transitions.
	ArtifactStatusPending ArtifactStatus = "Pending"
)

// TimestampLayout is the artifact timestamp format (local capture time).
const TimestampLayout = "2006-01-02 15:04:05"
