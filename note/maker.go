package note

import (
	"errors"
	"fmt"

	"github.com/lai323/jdict/jotoba"
)

// ErrStorage wraps failures of the Store. The replacement text is still
// valid when it is returned.
var ErrStorage = errors.New("note storage failed")

// Store is where notes are written, usually a vault.Vault.
type Store interface {
	FolderCreator
	Exists(path string) (bool, error)
	CreateNote(path, body string) error
}

type Settings struct {
	FolderPath string
	Mode       LinkMode
}

// Outcome describes what Apply did for one entry.
type Outcome struct {
	Path        string
	Replacement string
	Created     bool
}

type Maker struct {
	Store    Store
	Settings Settings
}

func NewMaker(store Store, settings Settings) *Maker {
	return &Maker{Store: store, Settings: settings}
}

// Path is the note path of item, creating its folder if needed.
func (m *Maker) Path(item jotoba.DictionaryItem) string {
	return FormatNotePath(m.Store, m.Settings.FolderPath, item.Title)
}

// Exists reports whether the note for item was already created.
func (m *Maker) Exists(item jotoba.DictionaryItem) (bool, error) {
	path := NormalizeFolder(m.Settings.FolderPath) + item.Title + ".md"
	ok, err := m.Store.Exists(path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return ok, nil
}

// Preview returns the note body without writing anything.
func (m *Maker) Preview(item jotoba.DictionaryItem) string {
	return Render(item)
}

// Apply creates the note for item unless it exists, and returns the link
// that replaces selection either way.
func (m *Maker) Apply(item jotoba.DictionaryItem, selection string) (Outcome, error) {
	out := Outcome{
		Path:        m.Path(item),
		Replacement: FormatReplacement(item, selection, m.Settings.Mode),
	}

	exists, err := m.Store.Exists(out.Path)
	if err != nil {
		return out, fmt.Errorf("%w: check %s: %w", ErrStorage, out.Path, err)
	}
	if exists {
		return out, nil
	}

	if err := m.Store.CreateNote(out.Path, Render(item)); err != nil {
		return out, fmt.Errorf("%w: create %s: %w", ErrStorage, out.Path, err)
	}
	out.Created = true
	return out, nil
}
