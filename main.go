package main

import "vdfproof/cmd"

func main() {
	cmd.Execute()
}
