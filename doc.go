/*
Package multitype dispatches the items of a heterogeneous list to the handlers
registered for their types, producing for each item a small dense integer code a
list host can use as the key of its presentation recycling pool.

Items are matched by their runtime type. An exact registration always wins; when
there is none, the first registered interface the item's type implements is used.

Basic Usage:

	adapter := multitype.New(multitype.WithItems(items))

	// one handler per type
	multitype.Register[*feed.Photo](adapter, &PhotoHandler{})

	// interface registration catches every implementation without its own binding
	multitype.Register[feed.Notice](adapter, &NoticeHandler{})

	// one type, several handlers, chosen per item
	multitype.RegisterOneToMany[*feed.Post](adapter).
	    To(&ShortPostHandler{}, &LongPostHandler{}).
	    WithLinker(func(_ int, p *feed.Post) int {
	        if len(p.Body) > 100 {
	            return 1
	        }
	        return 0
	    })

	code, err := adapter.ItemViewType(position)
	handler := adapter.HandlerForCode(code)

Registering a type again replaces every handler it had. RegisterAll merges the
bindings of another registry with the same override semantics.

A missing registration is returned as errors.HandlerNotFoundError; misuse of the
API (unknown code, builder used out of order, selector returning a foreign
handler) panics with an error matching errors.ErrProgramming.

The adapter performs no locking: configure it fully before rendering starts.
*/
package multitype
