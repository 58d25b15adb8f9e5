package platform

// Package platform contains OS integration glue: filesystem helpers for the
// CSV export directory and revealing exported files in the system file
// manager.
