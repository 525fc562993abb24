package main

import "huelog/internal/cli"

func main() {
	cli.Execute()
}
