// Package file provides the TOML-backed configuration store.
//
// Settings live in ~/.academico/config.toml by default. Keys are kept in
// dot notation in memory and written back as nested TOML tables. Watch
// reloads the file when it changes on disk.
package file
