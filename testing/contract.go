package testing

import (
	xmlcoder "github.com/xmlcoder/xmlcoder-go/xml"
)

// ExpectContractViolation calls fn and returns the *ContractError it panics
// with. Emits a testing error if fn returns normally or panics with another
// value.
func ExpectContractViolation(t T, fn func()) (err *xmlcoder.ContractError) {
	t.Helper()

	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("expect contract violation, got none")
			return
		}
		ce, ok := r.(*xmlcoder.ContractError)
		if !ok {
			t.Errorf("expect *ContractError panic, got %T: %v", r, r)
			return
		}
		err = ce
	}()

	fn()
	return nil
}
