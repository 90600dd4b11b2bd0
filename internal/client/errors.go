package client

import "errors"

var (
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrInvalidID        = errors.New("invalid id")
)
