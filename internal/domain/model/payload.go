package model

import "strings"

// Payload is a decoded JSON response body. The client does not enforce a
// schema; helpers only look at well-known keys.
type Payload map[string]any

// Success reports whether the payload carries "success": true.
func (p Payload) Success() bool {
	ok, _ := p["success"].(bool)
	return ok
}

// Data returns the "data" object, or nil when absent or not an object.
func (p Payload) Data() map[string]any {
	data, _ := p["data"].(map[string]any)
	return data
}

// Summaries returns data.summaries, or nil when absent.
func (p Payload) Summaries() []any {
	summaries, _ := p.Data()["summaries"].([]any)
	return summaries
}

// Headlines returns up to limit titles taken from summaries that are objects
// with a "title" or "headline" string.
func (p Payload) Headlines(limit int) []string {
	if limit <= 0 {
		return nil
	}

	headlines := make([]string, 0, limit)
	for _, item := range p.Summaries() {
		if len(headlines) >= limit {
			break
		}
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for _, key := range []string{"title", "headline"} {
			if title, ok := entry[key].(string); ok && strings.TrimSpace(title) != "" {
				headlines = append(headlines, strings.TrimSpace(title))
				break
			}
		}
	}
	return headlines
}
