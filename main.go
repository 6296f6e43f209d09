package main

import "fibseq/cmd"

func main() {
	cmd.Execute()
}
