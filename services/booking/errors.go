package booking

import "fmt"

type CommitError struct {
	Code    string
	Message string
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewCommitError(msg string) error {
	return &CommitError{
		Code:    "commitError",
		Message: msg,
	}
}

type DirectoryError struct {
	Code    string
	Message string
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewDirectoryError(msg string) error {
	return &DirectoryError{
		Code:    "directoryError",
		Message: msg,
	}
}
