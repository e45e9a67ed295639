//go:build !windows

package cli

// EnableANSI is a no-op; terminals outside Windows handle ANSI already.
func EnableANSI() {}
