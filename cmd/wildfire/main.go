package main

import "wildfire/internal/cli"

func main() {
	cli.Execute()
}
