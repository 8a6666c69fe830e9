// Package gemini wraps the Google Gemini generateContent REST API with
// bounded retry and typed failures for blocked prompts and empty candidates.
package gemini
