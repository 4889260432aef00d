package mocks

import "github.com/stretchr/testify/mock"

// maxLogFields bounds the field counts AllowAnyLogs registers expectations for
const maxLogFields = 8

// AllowAnyLogs lets the logger accept any message at any level with up to
// maxLogFields fields. testify matches argument counts exactly, so each arity
// gets its own optional expectation.
func AllowAnyLogs(l *Logger) *Logger {
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		for n := 0; n <= maxLogFields; n++ {
			args := make([]interface{}, n+1)
			for i := range args {
				args[i] = mock.Anything
			}
			l.On(level, args...).Maybe()
		}
	}
	return l
}
