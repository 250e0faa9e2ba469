package vault

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/spf13/afero"

	"github.com/lai323/jdict/note"
)

// Vault stores notes below a root directory. Paths are vault relative; "/"
// is the root itself.
type Vault struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Vault {
	return &Vault{fs: fs}
}

// Open returns a Vault rooted at dir on the OS filesystem.
func Open(dir string) (*Vault, error) {
	osfs := afero.NewOsFs()
	exist, err := afero.DirExists(osfs, dir)
	if err != nil {
		return nil, fmt.Errorf("Vault stat %s %w", dir, err)
	}
	if !exist {
		return nil, fmt.Errorf("Vault %s not exist", dir)
	}
	return New(afero.NewBasePathFs(osfs, dir)), nil
}

func (v *Vault) CreateFolder(p string) error {
	p = clean(p)
	exist, err := afero.DirExists(v.fs, p)
	if err != nil {
		return fmt.Errorf("Vault CreateFolder %s %w", p, err)
	}
	if exist {
		return note.ErrFolderExists
	}
	if err := v.fs.MkdirAll(p, 0755); err != nil {
		return fmt.Errorf("Vault MkdirAll %s %w", p, err)
	}
	return nil
}

func (v *Vault) Exists(p string) (bool, error) {
	exist, err := afero.Exists(v.fs, clean(p))
	if err != nil {
		return false, fmt.Errorf("Vault Exists %s %w", p, err)
	}
	return exist, nil
}

// CreateNote writes a new note and fails if one is already at p.
func (v *Vault) CreateNote(p, body string) error {
	p = clean(p)
	if err := v.fs.MkdirAll(path.Dir(p), 0755); err != nil {
		return fmt.Errorf("Vault MkdirAll %s %w", path.Dir(p), err)
	}
	f, err := v.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("Vault create note %s %w", p, err)
	}
	defer f.Close()
	if _, err := io.WriteString(f, body); err != nil {
		return fmt.Errorf("Vault write note %s %w", p, err)
	}
	return nil
}

func (v *Vault) ReadNote(p string) (string, error) {
	b, err := afero.ReadFile(v.fs, clean(p))
	if err != nil {
		return "", fmt.Errorf("Vault read note %s %w", p, err)
	}
	return string(b), nil
}

func clean(p string) string {
	return path.Join("/", p)
}
