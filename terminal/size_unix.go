//go:build !windows

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func windowWidth(f *os.File) (int, error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, fmt.Errorf("failed to get window size: %w", err)
	}
	if ws.Col == 0 {
		return 0, fmt.Errorf("terminal reports zero width")
	}
	return int(ws.Col), nil
}
