package view

type outcome uint8

const (
	outcomeOK outcome = iota
	outcomeCancelled
	outcomeFailed
)

// Result is the discriminated outcome of a lifecycle transition. Callers
// branch on the outcome, never on truthiness: OK carries the node,
// Cancelled is a silent no-op from a before-hook, Failed carries the
// recoverable error that was also reported on the "error" notification.
type Result struct {
	state outcome
	node  *Node
	err   error
}

func resultOK(n *Node) Result {
	return Result{state: outcomeOK, node: n}
}

func resultCancelled() Result {
	return Result{state: outcomeCancelled}
}

func resultFailed(err error) Result {
	return Result{state: outcomeFailed, err: err}
}

// OK reports whether the transition completed.
func (r Result) OK() bool {
	return r.state == outcomeOK
}

// Cancelled reports whether a before-hook declined the transition.
func (r Result) Cancelled() bool {
	return r.state == outcomeCancelled
}

// Failed reports whether the transition aborted on a recoverable error.
func (r Result) Failed() bool {
	return r.state == outcomeFailed
}

// Node returns the node on success, nil otherwise.
func (r Result) Node() *Node {
	return r.node
}

// Err returns the error on failure, nil otherwise.
func (r Result) Err() error {
	return r.err
}
