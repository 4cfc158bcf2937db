// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import (
	"github.com/cockroachdb/errors"
	"github.com/go-logr/logr"
)

// Config is used to configure the tree. It consists of a comparison function
// for each dimension plus ambient settings provided by the instantiator.
type Config[K, V any] struct {

	// CompareKeys orders the key dimension. It must be a total order.
	CompareKeys func(K, K) int

	// CompareValues orders the value dimension. It must be a total order.
	CompareValues func(V, V) int

	// Logger receives evictions and invariant failures. The zero value
	// discards everything.
	Logger logr.Logger

	// InitialCapacity pre-sizes the node arena.
	InitialCapacity int
}

func (c Config[K, V]) validate() error {
	if c.CompareKeys == nil {
		return errors.AssertionFailedf("bidimap: nil key comparator")
	}
	if c.CompareValues == nil {
		return errors.AssertionFailedf("bidimap: nil value comparator")
	}
	if c.InitialCapacity < 0 {
		return errors.AssertionFailedf(
			"bidimap: negative initial capacity %d", c.InitialCapacity)
	}
	return nil
}

func (c *Config[K, V]) logger() logr.Logger {
	if c.Logger.GetSink() == nil {
		return logr.Discard()
	}
	return c.Logger
}
