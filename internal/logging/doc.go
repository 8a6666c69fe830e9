// Package logging centralizes slog construction and the structured attribute
// vocabulary used across manna.
//
// Loggers carry standardized keys (component, batch correlation id, date,
// language, version, attempt) so a whole batch can be traced through the
// selection, generation, repair, and checkpoint stages. Console output is
// colorized when attached to a terminal; the JSON format is intended for
// service deployments.
package logging
