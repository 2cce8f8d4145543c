package config

import "os"

// parseEnv reads service credentials. GEMINI_API_KEY takes precedence over
// the shorter API_KEY.
func parseEnv(config *Config) {
	for _, name := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			config.GeminiAPIKey = v
			return
		}
	}
}
