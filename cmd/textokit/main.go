package main

import "github.com/ApplicationsForge/textokit/internal/cli"

func main() {
	cli.Execute()
}
