package port

// LogSink is an append-only, timestamped run log.
type LogSink interface {
	Log(msg string)
	Flush() error
}
