package github

import (
	"fmt"
	"strings"

	prwterrors "github.com/prwt/prwt/internal/errors"
	prwtexec "github.com/prwt/prwt/internal/exec"
)

// RequiredTools are the external binaries prwt shells out to.
var RequiredTools = []string{"gh", "git"}

// CheckDependencies verifies every required tool is invocable.
// The error names each absent tool.
func CheckDependencies() error {
	var missing []string
	for _, tool := range RequiredTools {
		if _, err := prwtexec.LookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", prwterrors.ErrMissingDependency, strings.Join(missing, ", "))
	}
	return nil
}
