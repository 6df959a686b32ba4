package main

import "unitconv/internal/cli"

func main() {
	cli.Execute()
}
