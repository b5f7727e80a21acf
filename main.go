package main

import "github.com/theirongolddev/hstreak/cmd"

func main() {
	cmd.Execute()
}
