/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package multitype

import "context"

// NoID is the stable id reported for items that have none.
const NoID int64 = -1

// Handler produces and updates the presentation objects for items of one type.
// Hosts call it through the Adapter with the dispatch code they were given.
//
// Implementations embed BaseHandler, which supplies the optional lifecycle
// hooks and the back-reference to the Adapter the handler is registered with.
type Handler interface {
	// CreatePresentation returns a new, unbound presentation object.
	CreatePresentation(ctx context.Context) (any, error)
	// Bind fills presentation with item. payloads carries partial-update hints
	// and is empty for a full bind.
	Bind(presentation any, item any, payloads []any) error
	// ItemID returns a stable id for item, or NoID.
	ItemID(item any) int64
	// Recycled is called when the host returns presentation to its pool.
	Recycled(presentation any)
	// FailedToRecycle is called when the host could not recycle presentation.
	// Returning true recycles it anyway.
	FailedToRecycle(presentation any) bool
	Attached(presentation any)
	Detached(presentation any)

	attach(a *Adapter)
}

// BaseHandler provides default lifecycle behavior for handlers.
type BaseHandler struct {
	adapter *Adapter
}

// Adapter returns the adapter this handler was last registered with, or nil.
func (h *BaseHandler) Adapter() *Adapter {
	return h.adapter
}

func (h *BaseHandler) attach(a *Adapter) {
	h.adapter = a
}

// ItemID returns NoID.
func (h *BaseHandler) ItemID(any) int64 {
	return NoID
}

func (h *BaseHandler) Recycled(any) {}

// FailedToRecycle returns false, leaving the decision to the host.
func (h *BaseHandler) FailedToRecycle(any) bool {
	return false
}

func (h *BaseHandler) Attached(any) {}

func (h *BaseHandler) Detached(any) {}
