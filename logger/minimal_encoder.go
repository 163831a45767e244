package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

type palette struct {
	fg       string
	time     string
	symbol   string
	path     string
	number   string
	accentA  string
	accentB  string
	yellow   string
	red      string
	redBg    string
	yellowBg string
}

// Gruvbox Dark (warm, muted)
var gruvbox = palette{
	fg:       "\x1b[38;5;223m",
	time:     "\x1b[38;5;108m",
	symbol:   "\x1b[38;5;142m",
	path:     "\x1b[38;5;109m",
	number:   "\x1b[38;5;175m",
	accentA:  "\x1b[38;5;208m",
	accentB:  "\x1b[38;5;214m",
	yellow:   "\x1b[38;5;214m",
	red:      "\x1b[38;5;167m",
	redBg:    "\x1b[48;5;88m",
	yellowBg: "\x1b[48;5;58m",
}

// Everforest Dark (forest greens)
var everforest = palette{
	fg:       "\x1b[38;5;223m",
	time:     "\x1b[38;5;107m",
	symbol:   "\x1b[38;5;108m",
	path:     "\x1b[38;5;109m",
	number:   "\x1b[38;5;108m",
	accentA:  "\x1b[38;5;65m",
	accentB:  "\x1b[38;5;208m",
	yellow:   "\x1b[38;5;179m",
	red:      "\x1b[38;5;167m",
	redBg:    "\x1b[48;5;52m",
	yellowBg: "\x1b[48;5;58m",
}

var currentTheme = "everforest"

// SetTheme configures the color scheme for console log output
func SetTheme(theme string) {
	if theme == "everforest" || theme == "gruvbox" {
		currentTheme = theme
	}
}

func colors() palette {
	if currentTheme == "gruvbox" {
		return gruvbox
	}
	return everforest
}

func colorComponent(name string) string {
	hash := 0
	for _, c := range name {
		hash += int(c)
	}
	if hash%2 == 0 {
		return colors().accentA
	}
	return colors().accentB
}

// minimalEncoder is a compact console encoder.
// Format: "13:04:35  emit  wrote artifact  symbol=GRID path=/tmp/.../GRID.gofrag"
type minimalEncoder struct {
	zapcore.Encoder
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{Encoder: enc.Encoder.Clone()}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := buffer.NewPool().Get()
	p := colors()

	final.AppendString(p.time)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	if lvl := levelColorString(ent.Level); lvl != "" {
		final.AppendString("  ")
		final.AppendString(lvl)
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorComponent(ent.LoggerName))
		final.AppendString(ent.LoggerName)
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(p.fg)
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	if len(fields) > 0 {
		final.AppendString("  ")
		final.AppendString(formatFields(fields))
	}

	final.AppendString("\n")
	return final, nil
}

func levelColorString(level zapcore.Level) string {
	p := colors()
	switch level {
	case zapcore.DebugLevel:
		return p.fg + "DEBUG" + colorReset
	case zapcore.WarnLevel:
		return colorBold + p.yellowBg + p.yellow + "WARN" + colorReset
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return colorBold + p.redBg + p.red + level.CapitalString() + colorReset
	default:
		return ""
	}
}

// formatFields renders every field as key=value, in call order.
// Nothing is dropped: unknown keys get the default colour.
func formatFields(fields []zapcore.Field) string {
	m := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(m)
	}

	p := colors()
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		val, ok := m.Fields[f.Key]
		if !ok {
			continue
		}
		color := p.fg
		switch f.Key {
		case FieldSymbol:
			color = p.symbol
		case FieldPath, FieldUnit:
			color = p.path
		case FieldCount, FieldDimension, FieldAttempts, FieldBytes:
			color = p.number
		case FieldError:
			color = p.red
		}
		parts = append(parts, fmt.Sprintf("%s=%s%v%s", f.Key, color, val, colorReset))
	}
	return strings.Join(parts, " ")
}
