//go:build windows

package rules

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func hostOSVersion() string {
	major, minor, build := windows.RtlGetNtVersionNumbers()
	return fmt.Sprintf("%d.%d.%d", major, minor, build)
}
