package main

import "github.com/wallaceicy06/go-tmas/cmd/tmas/cmd"

func main() {
	cmd.Execute()
}
