// SPDX-License-Identifier: MIT
// Package tensorop: sentinel error set. Construction-time tensor problems get
// package-local sentinels; apply-contract violations reuse the linop
// sentinels so callers can errors.Is uniformly across operator families.

package tensorop

import "errors"

var (
	// ErrNilTensor indicates that a nil tensor was passed to an adapter.
	ErrNilTensor = errors.New("tensorop: nil tensor")

	// ErrNotMatrix indicates that the tensor is not 2-dimensional; only
	// matrices can act as linear operators here.
	ErrNotMatrix = errors.New("tensorop: tensor is not 2-D")

	// ErrUnsupportedDtype indicates a tensor element type other than float64.
	// The Operator surface is float64-only by policy.
	ErrUnsupportedDtype = errors.New("tensorop: unsupported element type")
)
