// Package catalog defines the canonical sets of scripture citations eligible
// for devotional generation.
//
// Each supported language edition carries its own hand-curated list of New
// Testament citations rendered in that language's script, plus the canonical
// book names used to validate and normalize citations extracted from free
// text. The catalog is immutable static data with no failure modes; callers
// combine it with the exclusion store to pick unused citations.
package catalog
