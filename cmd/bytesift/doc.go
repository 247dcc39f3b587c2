// Package bytesift provides the command-line interface for the bytesift
// tool. It configures subcommands (analyze, count, classify, etc.), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/bytesift/bytesift/cmd/bytesift"
//	func main() { bytesift.Execute() }
package bytesift
