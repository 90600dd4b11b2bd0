package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrAnswerAuthorNotSet    = errors.New("answer author username is not set")
)
