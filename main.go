package main

import "github.com/shelfbridge/storytel-provider/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
