// Package misc keeps program identification, values are set by the linker.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	appName = ""
	version = "dev"
	gitHash = "unknown"
)

// GetAppName returns program name, executable name is used when not set at
// build time.
func GetAppName() string {
	if appName != "" {
		return appName
	}
	return strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
