// Package handler provides the Handler interface and the pieces shared by
// its implementations.
//
// The logger renders each call into a line exactly once and passes that
// line to its handler. Handlers decide where the line goes:
//
//   - consolehandler writes it to standard output synchronously.
//   - filehandler queues it and appends it to the log file from a single
//     background drain loop, batching everything queued while a write is
//     in flight.
//   - MultiHandler fans a line out to several handlers, in order.
//
// Handlers that keep counters expose them through StatsProvider.
package handler
