package jsonvalue

// object is the insertion-ordered string-keyed collection backing KindObject.
// Keys are unique; overwriting an existing key replaces the value in place
// and keeps the key's position.
type object struct {
	keys   []string
	values map[string]*Value
}

func newObject() *object {
	return &object{values: make(map[string]*Value)}
}

func (o *object) len() int {
	return len(o.keys)
}

func (o *object) get(key string) (*Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *object) set(key string, v *Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

func (o *object) delete(key string) bool {
	if _, exists := o.values[key]; !exists {
		return false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

func (o *object) clone() *object {
	c := &object{
		keys:   make([]string, len(o.keys)),
		values: make(map[string]*Value, len(o.values)),
	}
	copy(c.keys, o.keys)
	for k, v := range o.values {
		c.values[k] = v.clone()
	}
	return c
}
