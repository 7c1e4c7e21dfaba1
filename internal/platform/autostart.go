// Package platform wraps the OS primitives the overlay depends on: config
// directories, login autostart, window styles, monitor enumeration, global
// hotkeys and single-instance locking. Unsupported primitives return
// ErrUnsupported instead of failing the process.
package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrUnsupported indicates the primitive is not available on this system.
var ErrUnsupported = errors.New("platform primitive unsupported")

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(appName, execPath string, args ...string) error
	DisableAutostart(appName string) error
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

func slugName(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = "deepworktimer"
	}
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}

func quoteArg(arg string) string {
	if arg == "" || strings.ContainsAny(arg, " \t\"") {
		return `"` + strings.ReplaceAll(strings.Trim(arg, `"`), `"`, `\"`) + `"`
	}
	return arg
}

func joinArgs(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, quoteArg(arg))
	}
	return strings.Join(quoted, " ")
}

func commandLine(execPath string, args []string) string {
	line := quoteArg(execPath)
	if len(args) > 0 {
		line += " " + joinArgs(args)
	}
	return line
}
