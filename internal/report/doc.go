// Package report renders comparison results for human consumption.
//
// The plain-text report format is a compatibility contract: header block,
// then the only-in-first, only-in-second, and differing sections in that
// order, each sorted lexicographically with one bullet per file.
package report
