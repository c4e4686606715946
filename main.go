package main

import "github.com/blacksmith-sol/blacksmith/cmd"

func main() {
	cmd.Execute()
}
