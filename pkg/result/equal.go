package result

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/hashstructure/v2"
)

// Equal reports whether r and other hold the same variant and deeply equal
// payloads. Errors are compared by dynamic type and fields, so two
// errors.New("x") are equal while errors of different types never are.
func (r Result[T]) Equal(other Result[T]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return reflect.DeepEqual(r.value, other.value)
	}
	return reflect.DeepEqual(r.err, other.err)
}

type hashKey struct {
	Ok      bool
	Type    string
	Payload any
}

// Hash returns a hash consistent with Equal: results that are Equal hash to
// the same value. Self-referencing payloads hash by variant and type only.
func (r Result[T]) Hash() uint64 {
	var payload reflect.Value
	key := hashKey{Ok: r.ok}
	if r.ok {
		key.Type = fmt.Sprintf("%T", r.value)
		payload = reflect.ValueOf(&r.value).Elem()
	} else {
		key.Type = fmt.Sprintf("%T", r.err)
		payload = reflect.ValueOf(r.err)
	}

	if tree, ok := canonical(payload, map[visit]bool{}); ok {
		key.Payload = tree
	}

	h, err := hashstructure.Hash(key, hashstructure.FormatV2, nil)
	if err != nil {
		key.Payload = nil
		h, _ = hashstructure.Hash(key, hashstructure.FormatV2, nil)
	}
	return h
}

// String renders Success(<value>) or Failure(<error message>).
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}

func (r Result[T]) GoString() string {
	if r.ok {
		return fmt.Sprintf("result.Success(%#v)", r.value)
	}
	return fmt.Sprintf("result.Failure(%#v)", r.err)
}
