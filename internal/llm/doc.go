// Package llm talks to the text-generation collaborator. Its output is
// untrusted input: responses go through a strict JSON parse first, then
// a clearly-labeled best-effort line-split fallback, and the result is
// explicitly validated and converted into store shapes before any
// command touches persisted state. Any failure means no change.
package llm
