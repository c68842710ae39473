// Package main is the entry point of the parcel CLI.
package main

import "github.com/mouse-blink/parcel/cmd"

func main() {
	cmd.Execute()
}
