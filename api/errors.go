package api

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument matches every *InvalidArgumentError
	ErrInvalidArgument = errors.New("invalid insight argument")
	// ErrBlockchainCall matches every *BlockchainCallError
	ErrBlockchainCall = errors.New("blockchain call failed")
	// ErrMissingKey matches every *KeyError
	ErrMissingKey = errors.New("missing key in response")
)

// InvalidArgumentError is returned before any request is sent when a caller
// supplied an empty, negative or otherwise unusable argument.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e.Message == "" {
		return ErrInvalidArgument.Error()
	}
	return e.Message
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// BlockchainCallError is returned when the server answered outside 2xx and the
// client is configured to fail on such responses.
type BlockchainCallError struct {
	StatusCode int
	Body       []byte
}

func (e *BlockchainCallError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if body == "" {
		return fmt.Sprintf("blockchain call failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("blockchain call failed with status %d: %s", e.StatusCode, body)
}

func (e *BlockchainCallError) Is(target error) bool {
	return target == ErrBlockchainCall
}

// KeyError is returned by the extraction helpers when a response lacks an
// expected field.
type KeyError struct {
	Path   []string
	Reason string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("response field %q: %s", strings.Join(e.Path, "."), e.Reason)
}

func (e *KeyError) Is(target error) bool {
	return target == ErrMissingKey
}
