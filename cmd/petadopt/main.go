package main

import "pet-adoption/cmd/petadopt/commands"

func main() {
	commands.Execute()
}
