package dom

import "golang.org/x/net/html"

// Event is delivered to listeners registered with Element.On.
type Event struct {
	Type   string
	Target *Element
	Data   map[string]any
}

// ListenerFunc handles a dispatched event.
type ListenerFunc func(Event)

// On registers a listener for the named event on this element.
func (e *Element) On(event string, fn ListenerFunc) {
	if fn == nil {
		return
	}
	byEvent := e.doc.listeners[e.node]
	if byEvent == nil {
		byEvent = make(map[string][]ListenerFunc)
		e.doc.listeners[e.node] = byEvent
	}
	byEvent[event] = append(byEvent[event], fn)
}

// Dispatch delivers the event to this element's listeners, then bubbles it
// up through ancestor elements.
func (e *Element) Dispatch(event string, data map[string]any) {
	ev := Event{Type: event, Target: e, Data: data}
	for n := e.node; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		for _, fn := range e.doc.listeners[n][event] {
			fn(ev)
		}
	}
}

// DetachListeners removes every listener registered on this element. The
// subtree is untouched.
func (e *Element) DetachListeners() {
	delete(e.doc.listeners, e.node)
}

// ListenerCount returns the number of listeners registered for the event on
// this element.
func (e *Element) ListenerCount(event string) int {
	return len(e.doc.listeners[e.node][event])
}

// dropListenersDeep removes listener registrations for a node and its whole
// subtree. Called when nodes leave the document.
func (d *Document) dropListenersDeep(n *html.Node) {
	walk(n, func(n *html.Node) {
		delete(d.listeners, n)
	})
}
