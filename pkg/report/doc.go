// Package report renders fixture results for people and for scripts.
//
// The text format prints one PASS or FAIL line per fixture followed by a
// summary line. The JSON and YAML formats carry the same information in a
// single document.
package report
