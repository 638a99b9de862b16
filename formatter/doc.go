// Package formatter renders entries into text.
//
// A rendering is driven by an OrderSpec: the fields are emitted in the
// order listed, duplicates included. Two renderings exist and are
// configured independently:
//
//   - PrintFormatter produces the console line. Non-empty fields are
//     separated by one space and the line is prefixed with one indent unit
//     per indent level of the entry.
//   - WriteFormatter produces the persisted record. Fields end with an
//     invisible field separator and records start with an invisible record
//     separator, so a log file can be split back into entries with Decode.
//
// JSONFormatter exports entries as JSON lines.
//
// Date patterns use ICU notation (yyyy-MM-dd HH:mm:ss.SSS) and are
// converted to Go layouts by DateLayout. A record written with one write
// order can only be decoded with the same order; changing the order in the
// middle of a file leaves the earlier records undecodable.
//
// All formatters render into a pooled bytes.Buffer. Buffers larger than
// 64 KiB are not returned to the pool.
package formatter
