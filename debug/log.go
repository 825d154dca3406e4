package debug

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/signadot/jot-format/go-jot/encode"
	"github.com/signadot/jot-format/go-jot/ir"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger()

// Logf emits a debug line; *ir.Node arguments are rendered through the
// encoder rather than with the default %v.
func Logf(msg string, args ...any) {
	logger.Debug().Msgf(msg, renderArgs(args)...)
}

func renderArgs(args []any) []any {
	for i := range args {
		x, ok := args[i].(*ir.Node)
		if !ok {
			continue
		}
		d, err := encode.Marshal(x)
		if err != nil {
			continue
		}
		args[i] = string(d)
	}
	return args
}

// Logger returns the tool's diagnostic logger for callers that want
// structured fields.
func Logger() zerolog.Logger {
	return logger
}
