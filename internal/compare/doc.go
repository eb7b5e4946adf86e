// Package compare implements the diff engine that turns two scanned file
// sets into a ComparisonResult.
//
// The engine computes the set differences between the two trees, then runs a
// line-based unified diff over every file present on both sides. Read
// failures are captured as data on the affected file rather than aborting the
// run.
package compare
