package pipeline

import "github.com/pkg/errors"

// Not-found sentinels; controllers map these to 404. Everything else
// propagates unchanged as a store failure.
var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrStepNotFound     = errors.New("interview step not found")
	ErrFromStepNotFound = errors.New("from step not found on project")
)
