package main

import "github.com/priyxstudio/entries/cmd"

func main() {
	cmd.Execute()
}
