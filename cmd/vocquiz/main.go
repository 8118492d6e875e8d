package main

import "github.com/eslsoft/vocquiz/cmd"

func main() {
	cmd.Execute()
}
