// Package logutil provides logging utilities.
//
// Every package that logs keeps its own logger, obtained once with
// GetLogger. All loggers share one output, which discards everything until
// SetOutput is called.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	out     io.Writer = io.Discard
	loggers []*log.Logger
	lock    sync.Mutex
)

// GetLogger gets a logger with the given prefix, writing to the current
// output.
func GetLogger(prefix string) *log.Logger {
	lock.Lock()
	defer lock.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger,
// including ones obtained in the future.
func SetOutput(newOut io.Writer) {
	lock.Lock()
	defer lock.Unlock()
	out = newOut
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers to the named file,
// truncating it. An empty name restores the default of discarding output.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	SetOutput(file)
	return nil
}
