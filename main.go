package main

import "github.com/streetleague/skillbuilder/cmd"

func main() {
	cmd.Execute()
}
