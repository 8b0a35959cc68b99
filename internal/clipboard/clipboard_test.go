package clipboard

import (
	"errors"
	"testing"
)

func TestCopy(t *testing.T) {
	if _, err := getClipboardCommand(); err != nil {
		t.Skip("clipboard not available on this system")
	}

	// A headless Linux box may have xclip installed but no display.
	if err := Copy("remember: tabs, not spaces"); err != nil {
		t.Skipf("clipboard command present but failed: %v", err)
	}
}

func TestCopy_Unavailable(t *testing.T) {
	if _, err := getClipboardCommand(); err == nil {
		t.Skip("clipboard is available on this system")
	}

	err := Copy("text")
	if !errors.Is(err, ErrClipboardUnavailable) {
		t.Errorf("Copy() error = %v, want ErrClipboardUnavailable", err)
	}
}

func TestGetClipboardCommand(t *testing.T) {
	// Either a command or an error, never both.
	cmd, err := getClipboardCommand()
	if err != nil {
		if cmd != nil {
			t.Error("getClipboardCommand returned both command and error")
		}
		if !errors.Is(err, ErrClipboardUnavailable) {
			t.Errorf("error = %v, want ErrClipboardUnavailable", err)
		}
		return
	}
	if cmd == nil {
		t.Error("getClipboardCommand returned nil command with no error")
	}
	if cmd.Stdin != nil {
		t.Error("getClipboardCommand should not set stdin")
	}
}
