package xml

import "fmt"

// ContractError is the panic value raised when a value drives the encoder in
// a way the traversal protocol does not allow, such as acquiring two
// containers of different kinds or writing a record into a scalar container.
// It indicates a bug in an EncodeXML implementation rather than bad data, and
// aborts the whole encode call.
type ContractError struct {
	Op     string
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("xml: %s: %s", e.Op, e.Reason)
}

func violation(op, format string, v ...interface{}) {
	panic(&ContractError{Op: op, Reason: fmt.Sprintf(format, v...)})
}

func notImplemented(op string) {
	violation(op, "not implemented, model the nested value as an Encodable and pass it to Write")
}
