package main

import "VisualShell/internal/cli"

func main() {
	cli.Execute()
}
