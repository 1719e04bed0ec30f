package config

import (
	"os"
	"strings"
)

// RunningInTest reports whether the current process is a go test binary.
func RunningInTest() bool {
	return len(os.Args) > 0 && strings.HasSuffix(os.Args[0], ".test")
}
