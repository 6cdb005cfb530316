//go:build !signalsdebug

package signals

const buildDiagnostics = false
