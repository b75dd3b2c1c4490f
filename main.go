package main

import "blobls/cmd"

func main() {
	cmd.Execute()
}
