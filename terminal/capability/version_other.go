//go:build !windows

package capability

func windowsVersion() string {
	return ""
}
