package sysinfo

import "golang.org/x/sys/cpu"

// Features lists the SIMD extensions relevant to string search.
func Features() []string {
	return collect([]feature{
		{"asimd", cpu.ARM64.HasASIMD},
		{"sve", cpu.ARM64.HasSVE},
		{"crc32", cpu.ARM64.HasCRC32},
	})
}
