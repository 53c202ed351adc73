package main

import "github.com/jrudowski/minesweep/cmd"

func main() {
	cmd.Execute()
}
