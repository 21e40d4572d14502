package types

// SnippetState describes the snippet file relative to current settings.
type SnippetState string

const (
	// SnippetFresh means the snippet file matches the generator output.
	SnippetFresh SnippetState = "fresh"
	// SnippetStale means the snippet file exists but differs from the
	// generator output for the current settings.
	SnippetStale SnippetState = "stale"
	// SnippetMissing means the snippet file does not exist.
	SnippetMissing SnippetState = "missing"
)

// PairEntry is a pair with its one-based position, as shown to the user.
type PairEntry struct {
	Index int    `json:"index"`
	Tag   string `json:"tag"`
	Icon  string `json:"icon"`
}

// AddResult is returned by the add command.
type AddResult struct {
	Pair TagIconPair `json:"pair"`
	// Index is the one-based position the pair was appended at.
	Index int `json:"index"`
	Count int `json:"count"`
	// DuplicateTag is set when the tag was already mapped. The pair is
	// still appended; the duplicate only earns a warning.
	DuplicateTag bool `json:"duplicateTag,omitempty"`
}

// RemoveResult is returned by the remove command.
type RemoveResult struct {
	Removed TagIconPair `json:"removed"`
	Count   int         `json:"count"`
}

// MoveResult is returned by the move command.
type MoveResult struct {
	Pair TagIconPair `json:"pair"`
	From int         `json:"from"`
	To   int         `json:"to"`
}

// SetResult is returned by the set command.
type SetResult struct {
	Index  int         `json:"index"`
	Before TagIconPair `json:"before"`
	After  TagIconPair `json:"after"`
}

// ListResult is returned by the list command.
type ListResult struct {
	VaultRoot    string      `json:"vaultRoot"`
	SettingsPath string      `json:"settingsPath"`
	Pairs        []PairEntry `json:"pairs"`
}

// GenerateResult is returned by the generate command.
type GenerateResult struct {
	SnippetPath string `json:"snippetPath"`
	PairCount   int    `json:"pairCount"`
	Size        int    `json:"size"`
	Written     bool   `json:"written"`
	DryRun      bool   `json:"dryRun,omitempty"`
	// CSS carries the generated stylesheet for preview use. It is not
	// part of the JSON output.
	CSS string `json:"-"`
}

// StatusResult is returned by the status command.
type StatusResult struct {
	VaultRoot      string       `json:"vaultRoot"`
	UsedFallback   bool         `json:"usedFallback,omitempty"`
	SettingsPath   string       `json:"settingsPath"`
	SettingsExists bool         `json:"settingsExists"`
	SnippetPath    string       `json:"snippetPath"`
	PairCount      int          `json:"pairCount"`
	Snippet        SnippetState `json:"snippet"`
}

// InitResult is returned by the init command.
type InitResult struct {
	SettingsPath string `json:"settingsPath"`
	Created      bool   `json:"created"`
}

// GenConfigResult is returned by the gen-config command.
type GenConfigResult struct {
	ConfigContent string   `json:"-"`
	FilesWritten  []string `json:"filesWritten"`
}

// ExportResult is returned by the export command.
type ExportResult struct {
	Path      string `json:"path"`
	Format    string `json:"format"`
	PairCount int    `json:"pairCount"`
}

// ImportResult is returned by the import command.
type ImportResult struct {
	Path     string `json:"path"`
	Format   string `json:"format"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Total    int    `json:"total"`
	Merged   bool   `json:"merged,omitempty"`
}
