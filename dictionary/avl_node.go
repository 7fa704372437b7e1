package dictionary

type avlNode[K any, V any] struct {
	Key    K
	Value  V
	Height int
	Left   *avlNode[K, V]
	Right  *avlNode[K, V]
}

func (n *avlNode[K, V]) clone() *avlNode[K, V] {
	if n == nil {
		return nil
	}
	return &avlNode[K, V]{
		Key:    n.Key,
		Value:  n.Value,
		Height: n.Height,
		Left:   n.Left.clone(),
		Right:  n.Right.clone(),
	}
}
