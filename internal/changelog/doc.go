// Package changelog builds the pull request change log from three line-aligned
// exports.
//
// This package implements:
//   - Loading the baseline version and the metadata, date and build exports
//   - Positional correlation of the three exports by line ordinal
//   - Field extraction (metadata literal, submission date, build tag, note)
//   - Filtering of internal-only records
//   - Rendering of the reStructuredText report and writing it to disk
//
// The exports carry no shared key. The Nth line after the metadata header is
// paired with line N of the date and build exports, and blank metadata lines do
// not shift that index.
package changelog
