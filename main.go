package main

import "github.com/itsmostafa/invreorder/cmd"

func main() {
	cmd.Execute()
}
