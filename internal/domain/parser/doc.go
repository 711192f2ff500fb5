// Package parser implements the configuration-resolution engine: it turns
// the launcher's credentials-file-style text into a validated directory of
// organizations, defaults profiles, groups and accounts.
//
// The engine is a pure, synchronous transformation. Every entry point
// allocates its working state per call and holds nothing between calls, so
// repeated and concurrent invocations are safe by construction.
package parser
