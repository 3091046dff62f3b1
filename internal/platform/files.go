package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// AppDirName is the per-user directory name under the OS config root
const AppDirName = "clockbar"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ConfigDir returns the per-user configuration directory for the app.
// CLOCKBAR_CONFIG_DIR overrides the OS default.
func ConfigDir() (string, error) {
	if dir := os.Getenv("CLOCKBAR_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	root, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(root, AppDirName), nil
}

// LogDir returns the directory holding rotating log files
func LogDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// OpenFolder opens a directory in the system file manager
func OpenFolder(dirPath string) error {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if info, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("folder does not exist: %w", err)
	} else if !info.IsDir() {
		return fmt.Errorf("not a folder: %s", absPath)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderLinux tries xdg-open, then the common file managers
func openFolderLinux(dirPath string) error {
	if err := exec.Command(XDGOpenCommand, dirPath).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dirPath).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
