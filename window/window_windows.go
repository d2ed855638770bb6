//go:build windows

package window

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/varkel/widget-spy-go/domain/frame"
)

// Win32 DLL procs (lazy loaded)
var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW    = user32.NewProc("FindWindowW")
	procGetClientRect  = user32.NewProc("GetClientRect")
	procClientToScreen = user32.NewProc("ClientToScreen")
	procGetCursorPos   = user32.NewProc("GetCursorPos")
)

type winRect struct {
	Left, Top, Right, Bottom int32
}

type winPoint struct {
	X, Y int32
}

type winDetector struct{}

// NewDetector returns the Win32 window detector.
func NewDetector() Detector { return winDetector{} }

// ClientRect finds the window with the given title and returns its client
// rectangle in screen coordinates.
func (winDetector) ClientRect(title string) (frame.Area, error) {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return frame.Area{}, err
	}
	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(p)))
	if hwnd == 0 {
		return frame.Area{}, ErrNotFound
	}
	var r winRect
	if ok, _, _ := procGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&r))); ok == 0 {
		return frame.Area{}, ErrNotFound
	}
	var origin winPoint
	if ok, _, _ := procClientToScreen.Call(hwnd, uintptr(unsafe.Pointer(&origin))); ok == 0 {
		return frame.Area{}, ErrNotFound
	}
	return frame.Area{
		X:      int(origin.X),
		Y:      int(origin.Y),
		Width:  int(r.Right - r.Left),
		Height: int(r.Bottom - r.Top),
	}, nil
}

// CursorPos returns the pointer position in screen coordinates.
func CursorPos() (int, int, error) {
	var pt winPoint
	if ok, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt))); ok == 0 {
		return 0, 0, errors.New("window: GetCursorPos failed")
	}
	return int(pt.X), int(pt.Y), nil
}
