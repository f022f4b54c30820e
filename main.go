package main

import "github.com/craftline/craftline/cmd"

func main() {
	cmd.Execute()
}
