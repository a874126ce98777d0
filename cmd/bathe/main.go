package main

import "bathtub-manager/cmd/tui"

func main() {
	tui.RunTUI()
}
