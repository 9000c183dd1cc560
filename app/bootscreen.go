//go:build !bootdebug

package app

import "bigclock/hal"

func bootScreen(hal.HAL, string) {}
