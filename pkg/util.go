package pkg

import (
	"os/exec"
	"strings"
	"unsafe"
)

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// TryGetLastCommitHash returns the HEAD commit of the working directory repo,
// used as version info when the binary runs from the project root.
func TryGetLastCommitHash() (string, error) {
	cmd := exec.Command("git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(BytesToString(stdout)), nil
}
