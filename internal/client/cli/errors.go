package cli

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/unsaid/internal/client/client"
	"github.com/dmitrijs2005/unsaid/internal/common"
)

var errUsage = errors.New("usage")

func usage(text string) error {
	return &usageError{text: text}
}

type usageError struct{ text string }

func (e *usageError) Error() string { return "Usage: " + e.text }
func (e *usageError) Unwrap() error { return errUsage }

// describeError turns a command error into a line for the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, errUsage):
		return err.Error()
	case errors.Is(err, client.ErrSessionExpired):
		return "Your session has expired. Please login again."
	case errors.Is(err, client.ErrUnauthorized):
		return "Wrong username or password."
	case errors.Is(err, client.ErrUnavailable):
		return "The server is not reachable right now. Try again later."
	case errors.Is(err, client.ErrCompanionUnavailable):
		return "The companion is resting right now. Your words are still saved."
	case errors.Is(err, common.ErrorNotFound):
		return "No such entry."
	case errors.Is(err, common.ErrorAlreadyExists):
		return "That username is taken."
	case errors.Is(err, common.ErrorValidation):
		if _, detail, ok := strings.Cut(err.Error(), common.ErrorValidation.Error()+": "); ok {
			return detail
		}
		return err.Error()
	}
	return "Error: " + err.Error()
}
