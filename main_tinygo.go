//go:build tinygo

package main

import (
	"bigclock/app"
	"bigclock/hal"
)

func main() {
	_ = app.Run(hal.New())
	// Nothing to return to on a microcontroller.
	select {}
}
