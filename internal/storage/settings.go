package storage

// Settings are process-wide preferences. HiddenThemes only affects what the
// view layer shows; score computation never reads it.
type Settings struct {
	HiddenThemes []string `json:"hidden_themes"`
	DemoSeeded   bool     `json:"demo_seeded"`
}
