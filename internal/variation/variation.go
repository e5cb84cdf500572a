// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package variation tracks how many alternative recipes were requested for
// one ingredient set, enforcing an upper bound.
package variation

import "sync"

// DefaultLimit is the default maximum number of variations per recipe
// thread: the original plus DefaultLimit alternatives.
const DefaultLimit = 3

// NewController returns a controller allowing up to limit variations. A
// non-positive limit falls back to DefaultLimit.
func NewController(limit int) *Controller {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Controller{
		limit: limit,
	}
}

// Controller counts successful variation generations for the current recipe
// thread. The counter is scoped to the lifetime of one thread and resets
// whenever a fresh, non-variation generation starts.
type Controller struct {
	mu    sync.Mutex
	limit int
	count int
}

// CanRequest reports whether another variation may be requested. Callers
// must check this before issuing a model call so a rejected request costs
// nothing.
func (c *Controller) CanRequest() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count < c.limit
}

// Record counts one successful variation generation. Failed generations do
// not consume a slot and must not be recorded.
func (c *Controller) Record() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
}

// Reset starts a new recipe thread with a zero counter.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = 0
}

// Count returns the number of recorded variations.
func (c *Controller) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}
