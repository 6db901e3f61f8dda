package main

import "github.com/orgscope/orgscope/cmd"

func main() {
	cmd.Execute()
}
