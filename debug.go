package glkit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/glkit/driver"
)

// debugEnabledID is the id of the message inserted when debug output is
// turned on.
const debugEnabledID = 2137

// DebugMessage is a message produced by the driver's debug output.
type DebugMessage struct {
	Source   DebugSource
	Type     DebugType
	ID       uint32
	Severity DebugSeverity
	Text     string
}

// String formats the message as "OpenGL[SOURCE] TYPE -> text.".
func (m DebugMessage) String() string {
	return fmt.Sprintf("OpenGL[%s] %s -> %s.", m.Source, m.Type, m.Text)
}

// Level maps the message severity onto a slog level.
func (s DebugSeverity) Level() slog.Level {
	switch s {
	case DebugSeverityLow:
		return slog.LevelInfo
	case DebugSeverityMedium:
		return slog.LevelWarn
	case DebugSeverityHigh:
		return slog.LevelError
	}
	return slog.LevelDebug
}

// DebugCallback receives debug messages after they have been logged.
// It runs on the thread that delivers the message, which is the context
// thread when synchronous output is enabled.
type DebugCallback func(DebugMessage)

// EnableDebugOutput turns on the driver's debug output and routes it to the
// device logger. It inserts a notification so that the routing can be
// observed in the log.
func (d *Device) EnableDebugOutput(synchronous bool) {
	d.fns.Enable(driver.DEBUG_OUTPUT)
	if synchronous {
		d.fns.Enable(driver.DEBUG_OUTPUT_SYNCHRONOUS)
	} else {
		d.fns.Disable(driver.DEBUG_OUTPUT_SYNCHRONOUS)
	}
	d.fns.DebugMessageCallback(d.handleDebugMessage)
	d.debugEnabled = true

	d.fns.DebugMessageInsert(driver.DEBUG_SOURCE_APPLICATION, driver.DEBUG_TYPE_OTHER,
		debugEnabledID, driver.DEBUG_SEVERITY_NOTIFICATION, "OpenGL debug output enabled.")
	d.logger().Info("glkit: debug output enabled", "synchronous", synchronous)
}

// DisableDebugOutput turns off the driver's debug output and unregisters
// the callback.
func (d *Device) DisableDebugOutput() {
	if !d.debugEnabled {
		return
	}
	d.fns.Disable(driver.DEBUG_OUTPUT_SYNCHRONOUS)
	d.fns.Disable(driver.DEBUG_OUTPUT)
	d.fns.DebugMessageCallback(nil)
	d.debugEnabled = false
}

// DebugOutputEnabled reports whether debug output is routed by this device.
func (d *Device) DebugOutputEnabled() bool { return d.debugEnabled }

// SetDebugCallback replaces the callback that receives debug messages.
// Pass nil to only log them.
func (d *Device) SetDebugCallback(cb DebugCallback) {
	d.debugCallback = cb
}

// InsertDebugMessage injects an application message into the debug output
// stream. It is dropped by the driver when debug output is disabled.
func (d *Device) InsertDebugMessage(typ DebugType, id uint32, severity DebugSeverity, text string) {
	d.fns.DebugMessageInsert(driver.DEBUG_SOURCE_APPLICATION, driver.Enum(typ), id, driver.Enum(severity), text)
}

func (d *Device) handleDebugMessage(source, typ driver.Enum, id uint32, severity driver.Enum, text string) {
	msg := DebugMessage{
		Source:   DebugSource(source),
		Type:     DebugType(typ),
		ID:       id,
		Severity: DebugSeverity(severity),
		Text:     text,
	}

	log := d.logger()
	if level := msg.Severity.Level(); log.Enabled(context.Background(), level) {
		log.Log(context.Background(), level, msg.String(), "id", id)
	}
	if d.debugCallback != nil {
		d.debugCallback(msg)
	}
}
