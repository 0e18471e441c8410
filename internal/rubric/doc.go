// Package rubric loads reference rubrics: the ordered expected-category
// lists (with optional sub-elements) the coverage scorer compares against.
// Rubrics are plain YAML files; a Cache wraps a loader with a TTL so the
// owning service layer controls reload policy explicitly instead of the
// extraction core holding global state.
package rubric
