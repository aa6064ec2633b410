//go:build !amd64 && !arm64

package sysinfo

// Features lists the SIMD extensions relevant to string search.
func Features() []string {
	return nil
}
