package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const LogFile = "magma.log"

// InitLogging writes logs to a rotated file in logDir and, when console is
// set, to stderr as well. lumberjack opens its files with the os package, so
// logDir is created on the real filesystem rather than the launcher's afero.Fs.
func InitLogging(logDir string, console bool) (io.Closer, error) {
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return nil, err
	}
	file := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, LogFile),
		MaxSize:    1,
		MaxBackups: 2,
	}

	writers := []io.Writer{file}
	level := zerolog.InfoLevel
	if console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return file, nil
}
