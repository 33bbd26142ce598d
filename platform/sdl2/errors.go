package sdl2

import "errors"

// ErrUnavailable is returned when binary built without SDL2 support
var ErrUnavailable = errors.New("SDL2 platform not available - build with -tags sdl2 to enable")
