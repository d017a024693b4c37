package renderer

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultLogger writes to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
