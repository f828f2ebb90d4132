package logger

// Logger defines the logging interface.
//
// Every method accepts either values that are concatenated into one message
// ("uploaded ", n, " photos") or a message followed by key/value pairs
// ("photo uploaded", "user_id", id, "size", size).
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
