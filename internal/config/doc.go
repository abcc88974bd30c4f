// Package config loads and watches the TOML configuration file.
//
// The configuration covers the split editor defaults, the preview
// renderer, the rename validator scripts, and logging. A missing file is
// not an error; defaults apply. The Watcher polls the file's modification
// time so edits take effect without restarting.
package config
