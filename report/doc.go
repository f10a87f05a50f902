// Package report turns a montecarlo.Result into the flat output record of a
// test, encodes it as JSON or YAML and persists it in SQLite.
package report
