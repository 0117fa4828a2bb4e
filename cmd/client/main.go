package main

import "collectionhub/cmd/client/cmd"

func main() {
	cmd.Execute()
}
