// Package blobstore provides durable single-value byte storage backends for
// the cart table: in-memory, local file, Redis and Cloud Spanner.
//
// Every backend writes all-or-nothing: a failed Write leaves the previously
// stored bytes readable.
package blobstore

import "github.com/pkg/errors"

// ErrNotFound is returned by Read when nothing has been stored yet.
var ErrNotFound = errors.New("blobstore: nothing stored")
