package profile

import (
	"errors"
	"fmt"
	"strings"

	"creatorhub/internal/domain"
)

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrUnknownSection      = errors.New("unknown profile section")
	ErrEmptyGalleryPayload = errors.New("gallery payload has no images, videos or portfolio items")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrProfileSuspended    = errors.New("profile is suspended")
)

// IncompleteProfileError blocks publication and names the sections the
// creator still has to finish, so the UI can prompt precisely.
type IncompleteProfileError struct {
	MissingSections []domain.Section
}

func (e *IncompleteProfileError) Error() string {
	names := make([]string, len(e.MissingSections))
	for i, s := range e.MissingSections {
		names[i] = string(s)
	}
	return fmt.Sprintf("profile incomplete: %s", strings.Join(names, ", "))
}

// PersistenceRejectedError is returned when the store still rejects the
// gallery document after the recovery pass.
type PersistenceRejectedError struct {
	Paths []string
}

func (e *PersistenceRejectedError) Error() string {
	return fmt.Sprintf("store rejected document after recovery: %s", strings.Join(e.Paths, ", "))
}
