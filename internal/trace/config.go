package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Mode says where events are kept.
type Mode uint8

const (
	ModeStream Mode = iota + 1 // written as they happen
	ModeRing                   // held in memory for a crash dump
	ModeBoth
)

var modeNames = [...]string{"", "stream", "ring", "both"}

func (m Mode) String() string {
	if m > 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseMode reads a --trace-mode value.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames[1:] {
		if strings.EqualFold(s, name) {
			return Mode(i + 1), nil
		}
	}
	return ModeRing, fmt.Errorf("unknown trace mode %q (want stream|ring|both)", s)
}

// Config describes the tracer built by New.
type Config struct {
	Level      Level
	Mode       Mode
	Format     Format        // FormatAuto derives it from OutputPath
	Output     io.Writer     // takes precedence over OutputPath
	OutputPath string        // "" or "-" is stderr
	RingSize   int           // events kept by the ring; <= 0 picks a default
	Heartbeat  time.Duration // emit a heartbeat this often; 0 disables
}

// New builds the tracer cfg describes. LevelOff always yields Nop.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}

	var t Tracer
	switch cfg.Mode {
	case ModeRing:
		t = NewRing(cfg.RingSize, cfg.Level)
	case ModeStream, ModeBoth:
		w, err := cfg.writer()
		if err != nil {
			return nil, err
		}
		t = NewStream(w, cfg.Level, cfg.format())
		if cfg.Mode == ModeBoth {
			t = Tee(cfg.Level, t, NewRing(cfg.RingSize, cfg.Level))
		}
	default:
		return nil, fmt.Errorf("unknown trace mode %v", cfg.Mode)
	}

	if hb := StartHeartbeat(t, cfg.Heartbeat); hb != nil {
		t = &beating{Tracer: t, hb: hb}
	}
	return t, nil
}

func (cfg Config) format() Format {
	if cfg.Format != FormatAuto {
		return cfg.Format
	}
	switch {
	case strings.HasSuffix(cfg.OutputPath, ".ndjson"):
		return FormatNDJSON
	case filepath.Ext(cfg.OutputPath) == ".json":
		return FormatChrome
	}
	return FormatText
}

func (cfg Config) writer() (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		// hide Close so stderr survives the tracer
		return struct{ io.Writer }{os.Stderr}, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("trace output: %w", err)
	}
	return &fileSink{Writer: bufio.NewWriter(f), f: f}, nil
}

type fileSink struct {
	*bufio.Writer
	f *os.File
}

func (s *fileSink) Close() error {
	if err := s.Flush(); err != nil {
		_ = s.f.Close()
		return err
	}
	return s.f.Close()
}

// beating stops its heartbeat before closing the wrapped tracer.
type beating struct {
	Tracer
	hb *Heartbeat
}

func (b *beating) Close() error {
	b.hb.Stop()
	return b.Tracer.Close()
}
