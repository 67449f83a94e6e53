package toolCalling

import "time"

// DateTimeTool returns the current local date and time. It takes no
// parameters.
type DateTimeTool struct {
	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

func (h *DateTimeTool) Name() string {
	return "get_current_datetime"
}

func (h *DateTimeTool) Description() string {
	return "Get the current date and time. Use this for any questions related to the current time."
}

func (h *DateTimeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
		"required":   []string{},
	}
}

func (h *DateTimeTool) Execute(_ map[string]interface{}) (string, error) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	return now().Format("2006-01-02 15:04:05"), nil
}
