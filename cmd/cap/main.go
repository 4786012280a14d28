// Package main provides the cap CLI, a tiny memo tool backed by a local
// SQLite database.
package main

func main() {
	Execute()
}
