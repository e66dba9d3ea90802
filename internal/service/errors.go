package service

import "errors"

var (
	ErrPreviewNotFound       = errors.New("preview not found or expired")
	ErrPreviewTypeInvalid    = errors.New("unsupported preview type")
	ErrRedirectPathInvalid   = errors.New("redirect path must be site-relative")
	ErrPreviewPayloadInvalid = errors.New("preview payload does not match its type")
)
