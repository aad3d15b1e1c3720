package safejson

// Get looks up key. It returns the missing node unless this node wraps
// an object with that key. A key whose value is null returns a present
// null node, distinct from an absent key.
func (n *Node) Get(key string) *Node {
	obj, ok := n.objectPayload()
	if !ok {
		return missing
	}
	v, ok := obj.Get(key)
	if !ok {
		return missing
	}
	return &Node{val: v, present: true}
}

// Index looks up the element at i. It returns the missing node unless
// this node wraps an array and 0 <= i < Len.
func (n *Node) Index(i int) *Node {
	arr, ok := n.arrayPayload()
	if !ok {
		return missing
	}
	v, ok := arr.At(i)
	if !ok {
		return missing
	}
	return &Node{val: v, present: true}
}

// GetIndex is Get(key).Index(i).
func (n *Node) GetIndex(key string, i int) *Node {
	return n.Get(key).Index(i)
}
