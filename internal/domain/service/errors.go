package service

import "errors"

var (
	ErrNodeNotFound   = errors.New("node not found")
	ErrInvalidPresets = errors.New("invalid presets")
)
