//go:build windows

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

func windowWidth(f *os.File) (int, error) {
	handle := windows.Handle(f.Fd())
	if handle == windows.InvalidHandle {
		return 0, fmt.Errorf("invalid console handle")
	}

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(handle, &info); err != nil {
		return 0, fmt.Errorf("failed to get console screen buffer info: %w", err)
	}
	return int(info.Window.Right - info.Window.Left + 1), nil
}
