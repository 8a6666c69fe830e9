// Package exclusion persists the set of citations already consumed by
// successful generations so later runs never repeat a passage.
//
// The set is insert-only during normal operation and survives process
// restarts through a JSON side file. Storage failures are deliberately
// swallowed after logging: a persistence hiccup must never abort a batch, so
// missing or corrupt files load as an empty set and failed saves leave the
// previous on-disk state untouched. The store performs no locking of its own;
// running two batches against the same file concurrently is the caller's bug.
package exclusion
