package main

import "github.com/benediktstufler/grant/cmd/grant/cmd"

func main() {
	cmd.Execute()
}
