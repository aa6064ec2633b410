package sysinfo

import "golang.org/x/sys/cpu"

// Features lists the SIMD extensions relevant to string search.
func Features() []string {
	return collect([]feature{
		{"sse41", cpu.X86.HasSSE41},
		{"sse42", cpu.X86.HasSSE42},
		{"avx", cpu.X86.HasAVX},
		{"avx2", cpu.X86.HasAVX2},
		{"avx512bw", cpu.X86.HasAVX512BW},
		{"popcnt", cpu.X86.HasPOPCNT},
	})
}
