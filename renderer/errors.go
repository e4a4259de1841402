package renderer

import "errors"

var (
	ErrSceneNotDefined    = errors.New("renderer: no scene defined")
	ErrInvalidWorkerCount = errors.New("renderer: worker count must be positive")
)
