package requests

import (
	"errors"
	"fmt"
	"leaguelookup/pkg/messages"
)

// Errors returned by the Riot fetchers.
// Not found errors are mapped per endpoint, everything else is shared.
var (
	ErrAccountNotFound   = errors.New("account does not exist")
	ErrNotInGame         = errors.New("summoner is not in game")
	ErrNoMatchHistory    = errors.New("no match history available")
	ErrMatchNotFound     = errors.New("match does not exist")
	ErrMalformedResponse = errors.New(messages.FailedToParseMsg)
	ErrTransport         = errors.New("request could not be sent")
	ErrUnexpectedStatus  = errors.New("unexpected status code")
)

// StatusError is returned when the API answers with a status the endpoint doesn't document.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf(messages.BadStatusCodeMsg, e.StatusCode, e.URL)
}

// Is makes errors.Is(err, ErrUnexpectedStatus) work for any status.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
