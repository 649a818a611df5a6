// Package graphs defines the labeled multi-digraph pathql queries run
// against, and LabeledTwoCycles, a deterministic builder for the
// two-cycles test graphs used throughout this module's test suites.
package graphs
