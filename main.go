package main

import "github.com/KaramelBytes/csvplot-cli/cmd"

func main() {
	cmd.Execute()
}
