package ai

import "strings"

type Model struct {
	ID   string
	Name string
}

var models = []Model{
	{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash"},
	{ID: "gemini-2.5-flash-lite", Name: "Gemini 2.5 Flash-Lite"},
	{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash"},
}

func AvailableModels() []Model {
	out := make([]Model, len(models))
	copy(out, models)
	return out
}

func DefaultModelID() string {
	if len(models) == 0 {
		return ""
	}
	return models[0].ID
}

func NormalizeModelID(id string) string {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" {
		return DefaultModelID()
	}
	if _, ok := ModelByID(id); ok {
		return id
	}
	return DefaultModelID()
}

func ModelByID(id string) (Model, bool) {
	id = strings.TrimSpace(strings.ToLower(id))
	for _, m := range models {
		if m.ID == id {
			return m, true
		}
	}
	return Model{}, false
}

// NextModelID cycles through the known models, used by the settings hotkey.
func NextModelID(id string) string {
	id = NormalizeModelID(id)
	for i, m := range models {
		if m.ID == id {
			return models[(i+1)%len(models)].ID
		}
	}
	return DefaultModelID()
}
