package catlog

import "io"

// Default builds a console-only Logger writing to w (os.Stderr when nil),
// configured from the environment (see LoadEnv). It is not stored anywhere:
// the caller owns the instance and passes it to whoever needs to log.
func Default(w io.Writer) *Logger {
	cfg := LoadEnv(Config{Console: NewConsole(w)}, nil)
	return New(cfg)
}
