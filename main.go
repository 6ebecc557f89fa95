package main

import "github.com/embertrack/ember/cmd"

func main() {
	cmd.Execute()
}
