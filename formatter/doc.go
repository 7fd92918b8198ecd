// Package formatter defines how log entries are rendered into lines.
//
// The LineFormatter produces the on-disk and on-console form
//
//	[2024-03-01T09:30:00.000Z] [INFO] booking confirmed {"coach":"ana","slot":3}
//
// Timestamps default to ISO-8601 in UTC with millisecond precision.
// Arguments after the message are separated by single spaces; composite
// values are encoded as compact JSON and everything else is written in
// its plain string form (see AppendArg).
//
// Formatting happens in pooled bytebufferpool buffers and relies on the
// Append-style functions (time.AppendFormat, strconv.AppendInt) so the
// common scalar path does not allocate beyond the final string.
package formatter
