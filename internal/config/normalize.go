package config

// Default values applied by Normalize.
const (
	DefaultAddr           = "127.0.0.1:5173"
	DefaultSubmitURL      = "http://localhost:5000/api/forms/submit"
	DefaultTimeoutSeconds = 10
	DefaultView           = "markup"
)

// Normalize fills in defaults for omitted fields.
func Normalize(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Submit.URL == "" {
		cfg.Submit.URL = DefaultSubmitURL
	}
	if cfg.Submit.TimeoutSeconds == 0 {
		cfg.Submit.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.Editor.DefaultView == "" {
		cfg.Editor.DefaultView = DefaultView
	}
}
