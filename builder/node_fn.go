// SPDX-License-Identifier: MIT
// Package builder provides node value schemes used by triangulation constructors.
package builder

// NodeFn maps a constructor-local index to a node value.
// It must be pure: given the same idx, it always returns the same value.
// A negative result is rejected at insertion with simplicial2.ErrInvalidNode.
type NodeFn func(idx int) int

// IdentityNodeFn returns idx unchanged.
func IdentityNodeFn(idx int) int {
	return idx
}

// StrideNodeFn spaces node values stride apart: idx ↦ idx*stride.
// Panics if stride < 1.
func StrideNodeFn(stride int) NodeFn {
	if stride < 1 {
		panic("builder: StrideNodeFn(stride<1)")
	}
	return func(idx int) int {
		return idx * stride
	}
}

// TableNodeFn looks node values up in a copy of values. Indices outside the
// table map to -1 and therefore fail insertion.
func TableNodeFn(values []int) NodeFn {
	tbl := append([]int(nil), values...)
	return func(idx int) int {
		if idx < 0 || idx >= len(tbl) {
			return -1
		}
		return tbl[idx]
	}
}
