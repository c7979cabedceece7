// Package workspace manages the on-disk working copy that holds a checkout
// of the quarkus.io source branch for one indexing run.
//
// Ephemeral mode creates a timestamped directory (e.g., quarkusio-20260829-122336)
// under the system temp dir and removes it on Close. Persistent mode wraps a
// caller-provided path that survives across runs, enabling incremental fetches.
package workspace
