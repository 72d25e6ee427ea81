package main

import "jaldh/internal/cli"

func main() {
	cli.Execute()
}
