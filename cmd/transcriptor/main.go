package main

import "github.com/viettran1502/transcriptor/internal/cli"

func main() {
	cli.Execute()
}
