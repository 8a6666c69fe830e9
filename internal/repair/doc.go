// Package repair normalizes the semi-structured text the generation service
// returns into a strict devotional record. The service is unreliable about
// formatting, so parsing is a pipeline of named repair rules, each covering a
// malformation observed in production output, followed by schema validation
// and verse-text reassembly.
package repair
