package lapisdb

import "fmt"

// EscapeError reports a value or argument that cannot be turned into SQL
// text. It is fatal to the statement being built and is never retried.
type EscapeError struct {
	msg string
}

func (e *EscapeError) Error() string {
	return e.msg
}

func escapeErrorf(format string, args ...any) *EscapeError {
	return &EscapeError{msg: fmt.Sprintf(format, args...)}
}

// UnsupportedFeatureError reports a dialect-gated feature requested against a
// dialect that lacks it.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("dialect %s does not support %s", e.Dialect, e.Feature)
}

// ConfigError reports a failed backend selection.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// BackendError wraps a failure from the execute operation together with the
// SQL text that produced it. The original error is available through Unwrap.
type BackendError struct {
	SQL string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.SQL)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
