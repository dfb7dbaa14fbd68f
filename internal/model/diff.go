package model

// FileDiff is the reportable change of a single file.
type FileDiff struct {
	Fixed    []SerialisedIssue `json:"fixed,omitempty" yaml:"fixed,omitempty"`
	New      []SerialisedIssue `json:"new,omitempty" yaml:"new,omitempty"`
	Existing []SerialisedIssue `json:"existing,omitempty" yaml:"existing,omitempty"`
}

// LogLevel is the severity of a diff log entry.
type LogLevel string

const (
	// LogSuccess marks good news, such as fixed issues.
	LogSuccess LogLevel = "success"
	// LogWarn marks issues that are still around.
	LogWarn LogLevel = "warn"
	// LogError marks new issues.
	LogError LogLevel = "error"
	// LogInfo marks additional detail.
	LogInfo LogLevel = "info"
)

// CodeFrame points at an issue inside a source file for display.
type CodeFrame struct {
	Path    Path
	Message string
	Line    uint
	Column  uint
	Length  uint
}

// LogEntry is one human readable line of a diff summary.
type LogEntry struct {
	Level   LogLevel
	Message string
	Code    *CodeFrame
}

// Diff is the structured difference between an expected and a result snapshot.
// Paths lists the keys of Files in report order.
type Diff struct {
	Files map[Path]FileDiff
	Paths []Path
	Logs  []LogEntry
}

// Empty reports whether no file changed in a reportable way.
func (d Diff) Empty() bool {
	return len(d.Files) == 0
}

// Counts sums fixed, new and existing issues across the reported files.
func (d Diff) Counts() (fixed, added, existing int) {
	for _, fileDiff := range d.Files {
		fixed += len(fileDiff.Fixed)
		added += len(fileDiff.New)
		existing += len(fileDiff.Existing)
	}

	return fixed, added, existing
}
