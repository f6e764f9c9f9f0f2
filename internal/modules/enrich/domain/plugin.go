package domain

import "errors"

var (
	ErrPluginTimeout  = errors.New("plugin call timed out")
	ErrChecksum       = errors.New("plugin binary checksum mismatch")
	ErrUnknownPlugin  = errors.New("unknown plugin")
	ErrUnknownCommand = errors.New("plugin does not offer command")
)

// Manifest describes one registered enricher binary.
type Manifest struct {
	Name    string `json:"name"`
	Binary  string `json:"binary"`
	SHA256  string `json:"sha256,omitempty"`
	Enabled bool   `json:"enabled"`
}

// Metadata is what a running plugin reports about itself.
type Metadata struct {
	Name         string
	Version      string
	Capabilities []string
}

// CommandDescriptor names one enrichment a plugin can perform.
type CommandDescriptor struct {
	ID          string
	Title       string
	Description string
}

// Well-known command IDs. Plugins may offer any subset.
const (
	CommandWeekGoals     = "week_goals"
	CommandChapterInfo   = "chapter_info"
	CommandPracticeNotes = "practice_notes"
)

// EnrichRequest is one command invocation against a plugin.
type EnrichRequest struct {
	CommandID string
	PlanJSON  string
	Context   EnrichContext
}

type EnrichContext struct {
	WorkspacePath string
	CourseSlug    string
}

// EnrichResult is the raw plugin output before it is decoded into a
// decoration payload.
type EnrichResult struct {
	OutputJSON string
	Stderr     string
	ExitCode   int
}

// DecorationPayload is the JSON shape plugins return. Each command
// fills the part it owns; the service merges payloads across commands.
type DecorationPayload struct {
	WeekGoals     map[int]string               `json:"week_goals,omitempty"`
	Chapters      map[string]ChapterDecoration `json:"chapters,omitempty"`
	PracticeNotes map[string]string            `json:"practice_notes,omitempty"`
}

type ChapterDecoration struct {
	Title string `json:"title,omitempty"`
	Goals string `json:"goals,omitempty"`
}

// Merge folds other into p, with other winning on conflicts.
func (p *DecorationPayload) Merge(other DecorationPayload) {
	if len(other.WeekGoals) > 0 && p.WeekGoals == nil {
		p.WeekGoals = map[int]string{}
	}
	for k, v := range other.WeekGoals {
		p.WeekGoals[k] = v
	}
	if len(other.Chapters) > 0 && p.Chapters == nil {
		p.Chapters = map[string]ChapterDecoration{}
	}
	for k, v := range other.Chapters {
		p.Chapters[k] = v
	}
	if len(other.PracticeNotes) > 0 && p.PracticeNotes == nil {
		p.PracticeNotes = map[string]string{}
	}
	for k, v := range other.PracticeNotes {
		p.PracticeNotes[k] = v
	}
}
