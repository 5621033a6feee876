package main

import "github.com/Nunojmeira/espn-api/cmd"

func main() {
	cmd.Execute()
}
