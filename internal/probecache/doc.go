// Package probecache persists parsed probe results in a SQLite database so
// unchanged files are not probed twice. Entries are keyed by source path
// plus file size and mtime; any change to the file invalidates its entry
// naturally on lookup.
package probecache
