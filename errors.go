// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/bytekiller

package bytekiller

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	// ErrInvalidHeader is returned when the header disagrees with the stream it describes.
	ErrInvalidHeader = errors.New("invalid bytekiller header")
	// ErrBufferUnderflow is returned when a copy, literal or word read would leave the valid range.
	ErrBufferUnderflow = errors.New("buffer underflow")
	// ErrChecksumMismatch is returned when the XOR of body words differs from the header checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrSizeMismatch is returned by Verify when the decoded length differs from the original.
	ErrSizeMismatch = errors.New("size mismatch")
	// ErrByteMismatch is returned by Verify when the decoded content differs from the original.
	ErrByteMismatch = errors.New("byte mismatch")
	// ErrOutputTooLarge is returned when the header asks for more than MaxOutLen bytes.
	ErrOutputTooLarge = errors.New("uncompressed size exceeds MaxOutLen")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrNilReader is returned when DecompressFromReader is given a nil reader.
	ErrNilReader = errors.New("reader is nil")
)
