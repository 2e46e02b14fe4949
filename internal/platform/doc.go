package platform

// Package platform contains OS integration glue: the default download
// location, directory creation, and opening folders in the file manager.
