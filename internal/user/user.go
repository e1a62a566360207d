package user

import (
	"errors"
	"os"
	"os/user"
	"strconv"
)

// ErrNoViewer indicates no viewer identity could be resolved
var ErrNoViewer = errors.New("no viewer identity configured")

// Viewer is the current dashboard viewer: the sales rep whose opportunities
// the board shows.
type Viewer struct {
	ID   int64
	Name string
}

// Resolver resolves the identity of the current viewer.
type Resolver interface {
	CurrentViewer() (Viewer, error)
}

// EnvResolver resolves the viewer from the environment, with a configured
// fallback id. Resolution order:
// 1. KANBAN_USER_ID environment variable
// 2. the fallback id from configuration
// The display name comes from the OS user when available.
type EnvResolver struct {
	FallbackID int64
}

func (r EnvResolver) CurrentViewer() (Viewer, error) {
	id := r.FallbackID
	if v := os.Getenv("KANBAN_USER_ID"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err == nil && parsed > 0 {
			id = parsed
		}
	}
	if id <= 0 {
		return Viewer{}, ErrNoViewer
	}

	return Viewer{ID: id, Name: currentUsername()}, nil
}

// currentUsername returns the current system username.
// It tries multiple methods with fallbacks:
// 1. user.Current() - most reliable, gets username from OS
// 2. USER environment variable - fallback for restricted environments
// 3. "unknown" - final fallback to ensure a non-empty value
func currentUsername() string {
	currentUser, err := user.Current()
	if err != nil {
		username := os.Getenv("USER")
		if username == "" {
			return "unknown"
		}
		return username
	}
	return currentUser.Username
}
