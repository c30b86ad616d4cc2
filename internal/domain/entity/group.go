package entity

// Group is the external notification group (a Slack user group).
type Group struct {
	ID      string
	Handle  string
	Members []string
}

// DirectoryEntry is one member of the external workspace directory.
type DirectoryEntry struct {
	ID      string
	Name    string
	Email   string
	Deleted bool
}
