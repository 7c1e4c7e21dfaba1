//go:build !linux && !darwin && !windows

package platform

import "path/filepath"

func (service *platformService) EnableAutostart(appName, execPath string, args ...string) error {
	return ErrUnsupported
}

func (service *platformService) DisableAutostart(appName string) error {
	return ErrUnsupported
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
