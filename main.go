package main

import "github.com/theirongolddev/budgy/cmd"

func main() {
	cmd.Execute()
}
