package masking

import (
	"log/slog"
	"sort"
)

// Service applies the compiled redaction rules. Created once at startup;
// stateless after construction and safe for concurrent use.
type Service struct {
	patterns []*CompiledPattern
}

// NewService compiles the builtin rules plus any extras. Extras with the
// same name override builtins.
func NewService(extra map[string]Pattern) *Service {
	rules := builtinPatterns()
	for name, p := range extra {
		rules[name] = p
	}

	compiled := compilePatterns(rules)
	// Deterministic application order keeps masked output stable across
	// runs (map iteration is randomized).
	sort.Slice(compiled, func(i, j int) bool { return compiled[i].Name < compiled[j].Name })

	s := &Service{patterns: compiled}
	slog.Info("Masking service initialized", "patterns", len(compiled))
	return s
}

// MaskText redacts credential material from text.
func (s *Service) MaskText(text string) string {
	if text == "" {
		return text
	}
	for _, p := range s.patterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}

// MaskPayload redacts every string value in the payload, descending into
// nested maps and slices. The input is not modified.
func (s *Service) MaskPayload(payload map[string]any) map[string]any {
	if payload == nil {
		return nil
	}
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = s.maskValue(v)
	}
	return out
}

func (s *Service) maskValue(v any) any {
	switch val := v.(type) {
	case string:
		return s.MaskText(val)
	case map[string]any:
		return s.MaskPayload(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = s.maskValue(item)
		}
		return out
	default:
		return v
	}
}
