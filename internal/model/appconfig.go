package model

// AppConfig holds application-wide preferences.
type AppConfig struct {
	// Settings override file applied when a project has none of its own
	SettingsPath string `json:"settings_path"`

	// Export formats written by "optimize" when no format flag is given:
	// any of "report", "pdf", "labels", "xlsx", "dxf"
	DefaultFormats []string `json:"default_formats"`

	// Directory that receives exports when --out is not given ("" = next to the project)
	ExportDir string `json:"export_dir"`

	RecentProjects []string `json:"recent_projects"`
	MaxRecent      int      `json:"max_recent"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		SettingsPath:   "",
		DefaultFormats: []string{"report"},
		ExportDir:      "",
		RecentProjects: []string{},
		MaxRecent:      10,
	}
}

// AddRecentProject moves path to the front of the recent list, dropping
// duplicates and trimming the list to MaxRecent entries.
func (c *AppConfig) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	limit := c.MaxRecent
	if limit <= 0 {
		limit = DefaultAppConfig().MaxRecent
	}
	if len(recent) > limit {
		recent = recent[:limit]
	}
	c.RecentProjects = recent
}
