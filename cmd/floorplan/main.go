package main

import "github.com/OpenTraceLab/floorplan/cmd/floorplan/cmd"

func main() {
	cmd.Execute()
}
