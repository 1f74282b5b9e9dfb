package main

import "github.com/over-lang/over/cmd/over/cmd"

func main() {
	cmd.Execute()
}
