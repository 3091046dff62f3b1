package platform

// Package platform contains OS integration glue: per-user application
// directories and opening folders in the system file manager.
