package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// cpuFeatures lists the SIMD features the regex engine can use on this host.
func cpuFeatures() []string {
	var features []string
	add := func(name string, ok bool) {
		if ok {
			features = append(features, name)
		}
	}

	switch runtime.GOARCH {
	case "amd64", "386":
		add("sse2", cpu.X86.HasSSE2)
		add("ssse3", cpu.X86.HasSSSE3)
		add("sse4.1", cpu.X86.HasSSE41)
		add("sse4.2", cpu.X86.HasSSE42)
		add("popcnt", cpu.X86.HasPOPCNT)
		add("avx2", cpu.X86.HasAVX2)
		add("bmi2", cpu.X86.HasBMI2)
	case "arm64":
		add("asimd", cpu.ARM64.HasASIMD)
		add("crc32", cpu.ARM64.HasCRC32)
	}
	return features
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			features := cpuFeatures()
			if len(features) == 0 {
				features = []string{"none"}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "regexviz %s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(cmd.OutOrStdout(), "cpu features: %s\n", strings.Join(features, " "))
		},
	}
}
