package main

import "github.com/frahmantamala/legaltech-workflows/cmd"

func main() {
	cmd.Execute()
}
