package checks

import (
	"github.com/teranos/precheck/display"
	"github.com/teranos/precheck/errors"
	"github.com/teranos/precheck/project"
)

// CheckFiles verifies that the project directory and its four input files
// exist. The first missing path is reported and returned as ErrMissingFile.
func CheckFiles(rep *display.Reporter, p *project.Project) error {
	if missing := p.Missing(); len(missing) > 0 {
		rep.Fail("file not found: %s", missing[0])
		return errors.MarkMissingFile(errors.Newf("file not found: %s", missing[0]))
	}
	rep.Pass("files present")
	return nil
}
