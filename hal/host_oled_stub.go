//go:build !linux && !tinygo

package hal

import (
	"context"
	"errors"
)

func RunOLED(_ context.Context, _ NewAppFunc, _ HostConfig) error {
	return errors.New("oled mode requires linux with an I2C bus")
}
