package repair

import (
	"regexp"
	"strings"
)

// Each rule below covers one known malformation pattern. They are separate
// functions so each can be exercised in isolation.

// stripCodeFence removes a Markdown code fence wrapping the payload,
// tolerating a "json" language marker after the opening fence.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	body := strings.TrimLeft(trimmed[3:], " \t\r\n")
	if len(body) >= 4 && strings.EqualFold(body[:4], "json") {
		body = strings.TrimLeft(body[4:], " \t\r\n")
	}
	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}

// sliceBraces cuts leading and trailing commentary around the JSON object by
// slicing between the first "{" and the last "}".
func sliceBraces(content string) string {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		return trimmed
	}
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		return strings.TrimSpace(trimmed[start : end+1])
	}
	return trimmed
}

// leadingVerseNumberPattern matches a stray verse number prefixed to the
// text, as in `18: Porque por gracia...`.
var leadingVerseNumberPattern = regexp.MustCompile(`^\s*\d+\s*[:：.]\s*`)

func stripLeadingVerseNumber(s string) string {
	return leadingVerseNumberPattern.ReplaceAllString(s, "")
}

// languageVersionTagPattern matches a language-prefixed version tag glued to
// the front of the text, as in `9 JA-新改訳2003: イエスは言われた`.
var languageVersionTagPattern = regexp.MustCompile(`^\s*\d*\s*[A-Za-z]{2}-\S+?\s*[:：]\s*`)

func stripLanguageVersionTag(s string) string {
	return languageVersionTagPattern.ReplaceAllString(s, "")
}

// stripVersionTags removes every occurrence of the translation-version
// decoration from the text: bare (`RVR1960`), parenthesized (`(RVR1960)`),
// and language-prefixed (`ES-RVR1960`), however many times the service
// duplicated it.
func stripVersionTags(s, version string) string {
	if strings.TrimSpace(version) == "" {
		return s
	}
	pattern := regexp.MustCompile(`(?i)[(（]?\s*(?:[A-Za-z]{2}-)?` + regexp.QuoteMeta(version) + `\s*[)）]?`)
	return pattern.ReplaceAllString(s, " ")
}

// trimQuotes strips surrounding quotation marks in any of the scripts the
// editions use, plus leftover separators the tag stripping leaves behind.
func trimQuotes(s string) string {
	const cutset = "\"'“”„«»「」『』 \t\r\n"
	s = strings.Trim(strings.TrimSpace(s), cutset)
	s = strings.Trim(s, ":：,;")
	return strings.Trim(s, cutset)
}

// cleanVerseText reduces a citation-stripped fragment to the pure quoted
// scripture text.
func cleanVerseText(fragment, version string) string {
	text := stripVersionTags(fragment, version)
	text = trimQuotes(text)
	text = stripLeadingVerseNumber(text)
	return trimQuotes(text)
}
