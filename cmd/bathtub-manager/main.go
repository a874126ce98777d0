package main

import "bathtub-manager/cmd/cli"

func main() {
	cli.RunCLI()
}
