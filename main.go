package main

import "github.com/jsphweid/chordkey/cmd"

func main() {
	cmd.Execute()
}
