package main

import "github.com/katalvlaran/pentasign/internal/cli"

func main() {
	cli.Execute()
}
