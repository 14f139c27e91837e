// Package history persists a record of completed pipeline runs in a
// SQLite database so past runs can be listed from the command line.
package history
