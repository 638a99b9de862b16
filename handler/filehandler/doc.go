// Package filehandler persists rendered records to a single append-only
// log file and reads them back.
//
// Store favours simplicity over throughput: every Append opens the file,
// writes at its end and closes it again. Records are written by the write
// lane only, so appends never race each other.
//
// Decode is lenient. Records with too few fields are dropped, fields that
// fail to parse fall back to their zero value, and a malformed file never
// aborts a reload.
package filehandler
