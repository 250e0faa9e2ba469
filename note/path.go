package note

import (
	"errors"
	"log/slog"
	"strings"
)

// ErrFolderExists is what a FolderCreator returns for a folder that is
// already there.
var ErrFolderExists = errors.New("folder already exists")

type FolderCreator interface {
	CreateFolder(path string) error
}

// NormalizeFolder makes folder end with exactly one "/". An empty folder is
// the vault root.
func NormalizeFolder(folder string) string {
	trimmed := strings.TrimRight(folder, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed + "/"
}

// FormatNotePath returns the path of the note for title and asks folders to
// create its folder. Creation failures are logged only; writing the note
// reports them.
func FormatNotePath(folders FolderCreator, folder, title string) string {
	dir := NormalizeFolder(folder)
	if folders != nil {
		if err := folders.CreateFolder(dir); err != nil && !errors.Is(err, ErrFolderExists) {
			slog.Warn("create note folder", slog.String("folder", dir), slog.String("error", err.Error()))
		}
	}
	return dir + title + ".md"
}
