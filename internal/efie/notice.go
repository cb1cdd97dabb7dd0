package efie

import (
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/efie/internal/core/post"
)

// Notice converts an error from a fetch, save or display into the one-line
// message shown to the user.
func Notice(err error) string {
	var conflict *ConflictError
	var fieldErrs criterio.FieldErrors

	switch {
	case err == nil:
		return ""
	case errors.As(err, &conflict):
		return fmt.Sprintf("A file named %s already exists in %s.", conflict.Name, conflict.Dir)
	case errors.Is(err, post.ErrNotFound):
		return "Could not fetch the blog post. Please check your host and slug."
	case errors.Is(err, post.ErrTransport):
		return "Failed to fetch the blog post. Please try again."
	case errors.Is(err, post.ErrAlreadyExists):
		return "A file with that name already exists."
	case errors.Is(err, post.ErrNoActiveEditor):
		return "No active document to render into."
	case errors.Is(err, post.ErrNoSaveLocation):
		return "No save location set. Run 'efie settings set --save-location <dir>'."
	case errors.Is(err, post.ErrNotDirectory):
		return "The save location is not a directory."
	case errors.As(err, &fieldErrs):
		if len(fieldErrs) > 0 {
			return fmt.Sprintf("Invalid %s: %v", fieldErrs[0].Field, fieldErrs[0].Err)
		}
		return "Invalid input."
	case errors.Is(err, post.ErrInvalidInput):
		return "Invalid input."
	case errors.Is(err, post.ErrIO):
		return "Failed to save the blog. Please try again."
	default:
		return err.Error()
	}
}

// SavedNotice is the success message for a delivered post.
func SavedNotice(loc post.Location) string {
	switch loc.Kind {
	case post.SinkFile:
		return fmt.Sprintf("Blog saved as %s", loc.Path)
	case post.SinkDocument:
		return fmt.Sprintf("Blog rendered into %s", loc.Path)
	default:
		return ""
	}
}
