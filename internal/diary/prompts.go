package diary

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var promptsYAML []byte

type promptCatalog struct {
	Prompts []string `yaml:"prompts"`
}

var loadPrompts = sync.OnceValue(func() []string {
	var c promptCatalog
	if err := yaml.Unmarshal(promptsYAML, &c); err != nil {
		panic(fmt.Sprintf("diary: bad prompt catalog: %v", err))
	}
	if len(c.Prompts) == 0 {
		panic("diary: empty prompt catalog")
	}
	return c.Prompts
})

// Prompts returns a copy of the prompt catalog.
func Prompts() []string {
	return append([]string(nil), loadPrompts()...)
}

// promptKey is the unpadded Y-M-D form of day, e.g. "2025-1-5".
func promptKey(day time.Time) string {
	y, m, d := day.Date()
	return fmt.Sprintf("%d-%d-%d", y, int(m), d)
}

func promptHash(key string) int {
	h := 0
	for i := 0; i < len(key); i++ {
		h = (h*31 + int(key[i])) % 1_000_000
	}
	return h
}

// DailyPrompt picks the prompt for the calendar day of day (in its own
// location). Every caller sees the same prompt for the same date.
func DailyPrompt(day time.Time) (string, int) {
	prompts := loadPrompts()
	idx := promptHash(promptKey(day)) % len(prompts)
	return prompts[idx], idx
}
