// Package masking redacts credential material from tool results before
// they reach the progress trail. Agents routinely fetch documents and
// call substrate APIs whose responses can embed keys or connection
// strings; those must not end up in work_events rows or SSE frames.
// Masking applies only at the event boundary, never to the content fed
// back to the LLM.
package masking

import (
	"log/slog"
	"regexp"
)

// Pattern is one redaction rule: a regex and its replacement.
type Pattern struct {
	Pattern     string
	Replacement string
	Description string
}

// CompiledPattern is a pattern ready for application.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns returns the default redaction rules. Aimed at
// credential shapes, not at prose: agent output regularly contains long
// identifiers that must survive untouched.
func builtinPatterns() map[string]Pattern {
	return map[string]Pattern{
		"api_key": {
			Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{16,})["']?`,
			Replacement: `"api_key": "__MASKED_API_KEY__"`,
			Description: "API keys in key/value form",
		},
		"password": {
			Pattern:     `(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
			Replacement: `"password": "__MASKED_PASSWORD__"`,
			Description: "Passwords in key/value form",
		},
		"token": {
			Pattern:     `(?i)(?:token|bearer|jwt|secret)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{16,})["']?`,
			Replacement: `"token": "__MASKED_TOKEN__"`,
			Description: "Access tokens and secrets",
		},
		"authorization_header": {
			Pattern:     `(?i)authorization:\s*(?:bearer|basic)\s+[A-Za-z0-9_\-\.=+/]+`,
			Replacement: `Authorization: __MASKED_AUTHORIZATION__`,
			Description: "Authorization headers",
		},
		"certificate": {
			Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			Replacement: `__MASKED_CERTIFICATE__`,
			Description: "PEM blocks",
		},
		"ssh_key": {
			Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			Replacement: `__MASKED_SSH_KEY__`,
			Description: "SSH public keys",
		},
		"connection_string": {
			Pattern:     `\b([a-z][a-z0-9+]*)://([^:/\s]+):([^@/\s]+)@`,
			Replacement: `$1://$2:__MASKED__@`,
			Description: "Credentials embedded in URLs",
		},
	}
}

// compilePatterns compiles the given rules, skipping any that fail to
// compile.
func compilePatterns(patterns map[string]Pattern) []*CompiledPattern {
	compiled := make([]*CompiledPattern, 0, len(patterns))
	for name, p := range patterns {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		compiled = append(compiled, &CompiledPattern{
			Name:        name,
			Regex:       re,
			Replacement: p.Replacement,
		})
	}
	return compiled
}
