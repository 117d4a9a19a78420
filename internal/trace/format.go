package trace

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Format selects how events are serialized.
type Format uint8

const (
	FormatAuto Format = iota // derived from the output path
	FormatText
	FormatNDJSON
	FormatChrome // elements of a chrome://tracing traceEvents array
)

var formatNames = [...]string{"auto", "text", "ndjson", "chrome"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat accepts the names printed by Format.String; empty means auto.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatAuto, nil
	}
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}
	return FormatAuto, fmt.Errorf("trace format %q: want %s", s, strings.Join(formatNames[:], "|"))
}

// FormatEvent serializes ev. Text and NDJSON records end with a newline,
// Chrome records do not.
func FormatEvent(ev *Event, f Format) []byte {
	switch f {
	case FormatNDJSON:
		return append(marshal(newRecord(ev)), '\n')
	case FormatChrome:
		return marshal(newChromeRecord(ev))
	default:
		return appendText(nil, ev)
	}
}

// marshal cannot fail for the record types below: they hold only strings,
// integers and string maps.
func marshal(v any) []byte {
	data, _ := json.Marshal(v)
	return data
}

type record struct {
	Time     string            `json:"time"`
	Seq      uint64            `json:"seq"`
	Kind     string            `json:"kind"`
	Scope    string            `json:"scope"`
	SpanID   uint64            `json:"span_id"`
	ParentID uint64            `json:"parent_id,omitempty"`
	GID      uint64            `json:"gid,omitempty"`
	Name     string            `json:"name"`
	Detail   string            `json:"detail,omitempty"`
	Args     map[string]string `json:"args,omitempty"`
}

const recordTime = "2006-01-02T15:04:05.000000Z07:00"

func newRecord(ev *Event) record {
	return record{
		Time:     ev.Time.Format(recordTime),
		Seq:      ev.Seq,
		Kind:     ev.Kind.String(),
		Scope:    ev.Scope.String(),
		SpanID:   ev.SpanID,
		ParentID: ev.ParentID,
		GID:      ev.GID,
		Name:     ev.Name,
		Detail:   ev.Detail,
		Args:     ev.Args,
	}
}

type chromeRecord struct {
	Name  string            `json:"name"`
	Cat   string            `json:"cat"`
	Phase string            `json:"ph"`
	TS    int64             `json:"ts"`
	PID   int               `json:"pid"`
	TID   uint64            `json:"tid"`
	Args  map[string]string `json:"args,omitempty"`
}

// newChromeRecord maps spans to B/E pairs on the emitting goroutine's
// track; everything else is an instant. Detail travels as an arg.
func newChromeRecord(ev *Event) chromeRecord {
	phase := "i"
	switch ev.Kind {
	case KindSpanBegin:
		phase = "B"
	case KindSpanEnd:
		phase = "E"
	}
	args := ev.Args
	if ev.Detail != "" {
		args = maps.Clone(ev.Args)
		if args == nil {
			args = map[string]string{}
		}
		args["detail"] = ev.Detail
	}
	return chromeRecord{
		Name:  ev.Name,
		Cat:   ev.Scope.String(),
		Phase: phase,
		TS:    ev.Time.UnixMicro(),
		PID:   1,
		TID:   ev.GID,
		Args:  args,
	}
}

func textMark(k Kind) string {
	switch k {
	case KindSpanBegin:
		return "→"
	case KindSpanEnd:
		return "←"
	case KindHeartbeat:
		return "♡"
	default:
		return "•"
	}
}

// appendText writes `[seq] mark name (detail) {k=v, ...}`, indenting
// events that belong to a parent span.
func appendText(b []byte, ev *Event) []byte {
	b = fmt.Appendf(b, "[%6d] ", ev.Seq)
	if ev.ParentID > 0 {
		b = append(b, "  "...)
	}
	b = append(b, textMark(ev.Kind)...)
	b = append(b, ' ')
	b = append(b, ev.Name...)
	if ev.Detail != "" {
		b = fmt.Appendf(b, " (%s)", ev.Detail)
	}
	for i, k := range slices.Sorted(maps.Keys(ev.Args)) {
		sep := ", "
		if i == 0 {
			sep = " {"
		}
		b = fmt.Appendf(b, "%s%s=%s", sep, k, ev.Args[k])
	}
	if len(ev.Args) > 0 {
		b = append(b, '}')
	}
	return append(b, '\n')
}
