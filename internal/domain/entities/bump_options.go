package entities

// BumpOptions holds the runtime options of a single bump run.
type BumpOptions struct {
	Directory string // Project directory the managers operate in
	Commit    bool   // Render a commit message for the applied bumps
	Pristine  bool   // Refuse to run on a dirty working tree
	Verify    string // Optional verification command line
}

// BumpResult is what a bump run produced.
type BumpResult struct {
	Managers      []string // Names of the managers that were run
	CommitMessage string   // Empty unless requested and something was bumped
}
