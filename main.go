package main

import "github.com/bytesift/bytesift/cmd/bytesift"

func main() { bytesift.Execute() }
