package ir

// Object is a mutable string-keyed mapping. Member order is the order
// keys were first set; Set on an existing key replaces in place. Objects
// are shared by reference, never copied by the operations in this
// package.
type Object struct {
	fields []string
	values []Value
}

func NewObject() *Object {
	return &Object{}
}

func (o *Object) Len() int {
	return len(o.fields)
}

// Keys returns the member keys in order. The slice is a copy.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.fields))
	copy(keys, o.fields)
	return keys
}

func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

func (o *Object) Get(key string) (Value, bool) {
	for i, f := range o.fields {
		if f == key {
			return o.values[i], true
		}
	}
	return nil, false
}

func (o *Object) Set(key string, v Value) {
	if v == nil {
		v = NullValue
	}
	for i, f := range o.fields {
		if f == key {
			o.values[i] = v
			return
		}
	}
	o.fields = append(o.fields, key)
	o.values = append(o.values, v)
}

func (o *Object) Delete(key string) bool {
	for i, f := range o.fields {
		if f == key {
			o.fields = append(o.fields[:i], o.fields[i+1:]...)
			o.values = append(o.values[:i], o.values[i+1:]...)
			return true
		}
	}
	return false
}

// Array is a mutable ordered sequence. Arrays are shared by reference,
// never copied by the operations in this package.
type Array struct {
	values []Value
}

func NewArray() *Array {
	return &Array{}
}

func (a *Array) Len() int {
	return len(a.values)
}

func (a *Array) At(i int) (Value, bool) {
	if i < 0 || i >= len(a.values) {
		return nil, false
	}
	return a.values[i], true
}

func (a *Array) Append(v Value) {
	if v == nil {
		v = NullValue
	}
	a.values = append(a.values, v)
}

// SetAt replaces the element at i. It reports false and leaves the
// array unchanged when i is out of range; it never extends.
func (a *Array) SetAt(i int, v Value) bool {
	if i < 0 || i >= len(a.values) {
		return false
	}
	if v == nil {
		v = NullValue
	}
	a.values[i] = v
	return true
}
