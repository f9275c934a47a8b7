// Package logging configures the slf4g native logger from command line flags.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/echocat/slf4g/native"
	"github.com/echocat/slf4g/native/consumer"
	"github.com/echocat/slf4g/native/facade/value"
	"github.com/echocat/slf4g/native/formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayusman/mudra/internal/config"
)

// Logging owns the log output. Create it with New before any flag parsing
// so the log.* flags reach the native provider.
type Logging struct {
	File string

	out  *writer
	file *lumberjack.Logger
}

// New routes the native logger through stderr.
func New() *Logging {
	out := &writer{delegates: []io.Writer{os.Stderr}}
	consumer.Default = consumer.NewWriter(out)
	return &Logging{out: out}
}

// SetupConfiguration registers log.level, log.format, log.color and log.file.
func (l *Logging) SetupConfiguration(using config.FlagHolder) {
	lv := value.NewProvider(native.DefaultProvider)
	lv.Consumer.Formatter.Codec = value.MappingFormatterCodec{
		"text": formatter.NewText(),
		"json": formatter.NewJson(),
	}

	using.Flag("log.level", "Minimum level of log events to print.").
		Envar("MUDRA_LOG_LEVEL").
		SetValue(lv.Level)
	using.Flag("log.format", "Log format, text or json.").
		Envar("MUDRA_LOG_FORMAT").
		Default("text").
		SetValue(lv.Consumer.Formatter)
	using.Flag("log.color", "When to color log output: auto, always or never.").
		Envar("MUDRA_LOG_COLOR").
		Default("auto").
		SetValue(lv.Consumer.Formatter.ColorMode)
	using.Flag("log.file", "Also write logs to this file, rotated at 100MB.").
		Envar("MUDRA_LOG_FILE").
		StringVar(&l.File)
}

// Initialize opens the log file, if one was requested.
func (l *Logging) Initialize() error {
	if l.File == "" || l.file != nil {
		return nil
	}

	f, err := os.OpenFile(l.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file %q: %w", l.File, err)
	}
	_ = f.Close()

	l.file = &lumberjack.Logger{
		Filename:   l.File,
		LocalTime:  true,
		Compress:   true,
		MaxSize:    100,
		MaxAge:     7,
		MaxBackups: 3,
	}
	l.out.add(l.file)

	return nil
}

// Close detaches and closes the log file.
func (l *Logging) Close() error {
	if l.file == nil {
		return nil
	}
	l.out.remove(l.file)
	err := l.file.Close()
	l.file = nil
	return err
}

// writer fans log output out to every delegate.
type writer struct {
	delegates []io.Writer
	mutex     sync.RWMutex
}

func (w *writer) Write(p []byte) (n int, err error) {
	w.mutex.RLock()
	defer w.mutex.RUnlock()

	for i, d := range w.delegates {
		nn, err := d.Write(p)
		if err != nil {
			return n, err
		}
		if i == 0 {
			n = nn
		}
	}

	return n, nil
}

func (w *writer) add(d io.Writer) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.delegates = append(w.delegates, d)
}

func (w *writer) remove(d io.Writer) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	kept := w.delegates[:0]
	for _, candidate := range w.delegates {
		if candidate != d {
			kept = append(kept, candidate)
		}
	}
	w.delegates = kept
}
