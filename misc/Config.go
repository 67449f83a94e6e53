package misc

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config is a flat section/key store loaded once from a YAML file. The file
// is optional; a missing or unreadable file means every lookup falls back
// to its default. Path comes from GROQASSIST_CONFIG, else ./config.yaml.
//
//	llm:
//	  MODEL: llama3-8b-8192
//	  BASE_URL: https://api.groq.com/openai/v1
//	misc:
//	  MaxContext: "32"
//	  DEBUG: "false"
var (
	configOnce sync.Once
	configData map[string]map[string]string
)

func loadConfig() {
	configOnce.Do(func() {
		configData = map[string]map[string]string{}
		path := os.Getenv("GROQASSIST_CONFIG")
		if path == "" {
			path = "config.yaml"
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return
		}
		var parsed map[string]map[string]string
		if err := yaml.Unmarshal(raw, &parsed); err != nil {
			Warn("config", "ignoring malformed "+path+": "+err.Error())
			return
		}
		configData = parsed
	})
}

// ResetConfigForTest clears the loaded config so the next lookup re-reads
// the file. Test helper only.
func ResetConfigForTest() {
	configOnce = sync.Once{}
	configData = nil
}

// GetConfigValueDefault reads a config value, returning defaultValue when
// the section or key is missing or empty.
func GetConfigValueDefault(section, key string, defaultValue string) string {
	loadConfig()
	sec, ok := configData[section]
	if !ok {
		return defaultValue
	}
	value := strings.TrimSpace(sec[key])
	if value == "" {
		return defaultValue
	}
	return value
}

// GetMaxContext returns the context window budget in tokens. MaxContext is
// configured in KB of tokens under [misc]; default 32 KB = 32768 tokens.
func GetMaxContext() int {
	val := GetConfigValueDefault("misc", "MaxContext", "32")
	kb, err := strconv.Atoi(val)
	if err != nil || kb <= 0 {
		kb = 32
	}
	return kb * 1024
}
