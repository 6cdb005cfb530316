//go:build signalsdebug

package signals

const buildDiagnostics = true
