package main

import "github.com/mcoot/edgeguard/internal/cli"

func main() {
	cli.Execute()
}
