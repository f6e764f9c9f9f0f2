package dto

// PluginInfo is one manifest row.
type PluginInfo struct {
	Name    string `json:"name"`
	Binary  string `json:"binary"`
	Enabled bool   `json:"enabled"`
}

// Command is one enrichment a plugin offers.
type Command struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DoctorEntry is one plugin's health check result.
type DoctorEntry struct {
	Plugin string `json:"plugin"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

// RunCommand applies a plugin's enrichments to a course's plan. Empty
// Commands means run everything the plugin offers.
type RunCommand struct {
	CourseSlug string
	Plugin     string
	Commands   []string
}
