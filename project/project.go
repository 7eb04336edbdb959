// Package project locates the files of a tapeout project directory and loads
// its info.yaml metadata.
package project

import (
	"os"
	"path/filepath"

	"github.com/teranos/precheck/errors"
)

// InfoFile is the metadata descriptor expected in every project directory.
const InfoFile = "info.yaml"

// Project is a project directory and the input files derived from its name.
type Project struct {
	Dir         string
	Name        string
	GDSPath     string
	LEFPath     string
	VerilogPath string
	InfoPath    string
}

// New derives the project file paths from dir. Symlinks are resolved first,
// so the project name is the base name of the real directory:
// "runs/tt_um_foo/" yields tt_um_foo.gds.
func New(dir string) (*Project, error) {
	if dir == "" {
		return nil, errors.New("project directory is empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", dir)
	}
	// a missing directory keeps its absolute path and is reported by Missing
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	name := filepath.Base(abs)
	return &Project{
		Dir:         abs,
		Name:        name,
		GDSPath:     filepath.Join(abs, name+".gds"),
		LEFPath:     filepath.Join(abs, name+".lef"),
		VerilogPath: filepath.Join(abs, name+".v"),
		InfoPath:    filepath.Join(abs, InfoFile),
	}, nil
}

// RequiredPaths lists the paths that must exist, directory first.
func (p *Project) RequiredPaths() []string {
	return []string{p.Dir, p.GDSPath, p.LEFPath, p.VerilogPath, p.InfoPath}
}

// InputFiles are the files whose content the checks read.
func (p *Project) InputFiles() []string {
	return []string{p.GDSPath, p.LEFPath, p.VerilogPath, p.InfoPath}
}

// Missing returns the required paths that do not exist, in RequiredPaths order.
func (p *Project) Missing() []string {
	var missing []string
	for _, path := range p.RequiredPaths() {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	return missing
}

// Path joins name onto the project directory.
func (p *Project) Path(name string) string {
	return filepath.Join(p.Dir, name)
}
