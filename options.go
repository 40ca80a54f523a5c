package glkit

import "log/slog"

// DeviceOption configures a Device during creation.
// Use functional options to customize Device behavior.
//
// Example:
//
//	// Plain device, no debug output
//	dev, err := glkit.NewDevice(fns)
//
//	// Synchronous debug output routed to a custom logger
//	dev, err := glkit.NewDevice(fns,
//	    glkit.WithDebugOutput(true),
//	    glkit.WithLogger(logger))
type DeviceOption func(*deviceOptions)

// deviceOptions holds optional configuration for Device creation.
type deviceOptions struct {
	debugOutput bool
	synchronous bool
	callback    DebugCallback
	logger      *slog.Logger
}

// defaultOptions returns the default device options.
func defaultOptions() deviceOptions {
	return deviceOptions{
		logger: nil, // Falls back to the package logger if nil
	}
}

// WithDebugOutput enables the driver's debug output when the Device is
// created. Messages are logged through the device logger and forwarded to
// the callback set with [WithDebugCallback].
//
// When synchronous is true, messages are delivered on the thread that made
// the offending call, before the call returns. This is slower but makes
// stack traces point at the culprit.
func WithDebugOutput(synchronous bool) DeviceOption {
	return func(o *deviceOptions) {
		o.debugOutput = true
		o.synchronous = synchronous
	}
}

// WithDebugCallback installs a callback that receives every debug message
// after it has been logged.
//
// Example:
//
//	dev, err := glkit.NewDevice(fns,
//	    glkit.WithDebugOutput(false),
//	    glkit.WithDebugCallback(func(m glkit.DebugMessage) {
//	        if m.Severity == glkit.DebugSeverityHigh {
//	            panic(m.String())
//	        }
//	    }))
func WithDebugCallback(cb DebugCallback) DeviceOption {
	return func(o *deviceOptions) {
		o.callback = cb
	}
}

// WithLogger sets a logger used by this Device instead of the package
// logger configured with [SetLogger].
func WithLogger(l *slog.Logger) DeviceOption {
	return func(o *deviceOptions) {
		o.logger = l
	}
}
