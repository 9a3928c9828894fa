package intcode

import "errors"

var (
	ErrInvalidAddress       = errors.New("invalid address")
	ErrUnknownOpcode        = errors.New("unknown opcode")
	ErrInvalidParameterMode = errors.New("invalid parameter mode")
)
