package grove

import "errors"

var (
	// ErrInvalidConfig is returned when a SceneConfig cannot produce a scene.
	ErrInvalidConfig = errors.New("invalid scene config")

	// ErrInvalidGeneration is returned when a pen is requested for a
	// generation outside [0, maxGeneration] or for a non-positive
	// maxGeneration.
	ErrInvalidGeneration = errors.New("invalid generation")
)
