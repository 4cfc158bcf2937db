// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import "github.com/cockroachdb/errors"

// Check verifies the structural invariants of both dimensions: a black root,
// consistent parent links, strictly increasing in-order traversal, no red
// node with a red child, equal black height on every path, and the same node
// set of size Len in each dimension.
func (t *Tree[K, V]) Check() error {
	if live := t.np.live(); live != t.count {
		return t.checkFailed(errors.AssertionFailedf(
			"arena holds %d live nodes, count is %d", live, t.count))
	}
	var seen [numDims][]NodeID
	for d := KeyDim; d < numDims; d++ {
		nodes, err := t.checkDim(d)
		if err != nil {
			return t.checkFailed(err)
		}
		seen[d] = nodes
	}
	// Both in-order walks visit every node once; compare them as sets.
	inKeyDim := make(map[NodeID]struct{}, len(seen[KeyDim]))
	for _, id := range seen[KeyDim] {
		inKeyDim[id] = struct{}{}
	}
	for _, id := range seen[ValueDim] {
		if _, ok := inKeyDim[id]; !ok {
			return t.checkFailed(errors.AssertionFailedf(
				"node %d is in the value dimension but not the key dimension", id))
		}
	}
	return nil
}

func (t *Tree[K, V]) checkFailed(err error) error {
	t.log.Error(err, "invariant violated")
	return err
}

func (t *Tree[K, V]) checkDim(d Dim) ([]NodeID, error) {
	root := t.root[d]
	if root == Nil {
		if t.count != 0 {
			return nil, errors.AssertionFailedf("%s dimension is empty, count is %d", d, t.count)
		}
		return nil, nil
	}
	if !t.isBlack(root, d) {
		return nil, errors.AssertionFailedf("%s root %d is red", d, root)
	}
	if p := t.parent(root, d); p != Nil {
		return nil, errors.AssertionFailedf("%s root %d has parent %d", d, root, p)
	}

	var s walkStack
	blackHeight := -1
	s.push(walkFrame{id: root, blacks: 1})
	for s.len() > 0 {
		f := s.pop()
		for _, child := range [2]NodeID{t.left(f.id, d), t.right(f.id, d)} {
			if child == Nil {
				if blackHeight == -1 {
					blackHeight = f.blacks
				} else if blackHeight != f.blacks {
					return nil, errors.AssertionFailedf(
						"%s black height %d below node %d, expected %d",
						d, f.blacks, f.id, blackHeight)
				}
				continue
			}
			if p := t.parent(child, d); p != f.id {
				return nil, errors.AssertionFailedf(
					"%s node %d has parent %d, expected %d", d, child, p, f.id)
			}
			if t.isRed(f.id, d) && t.isRed(child, d) {
				return nil, errors.AssertionFailedf(
					"%s red node %d has red child %d", d, f.id, child)
			}
			blacks := f.blacks
			if t.isBlack(child, d) {
				blacks++
			}
			s.push(walkFrame{id: child, blacks: blacks})
		}
	}

	nodes := make([]NodeID, 0, t.count)
	for id := t.First(d); id != Nil; id = t.nextGreater(id, d) {
		if len(nodes) > 0 && t.compare(nodes[len(nodes)-1], id, d) >= 0 {
			return nil, errors.AssertionFailedf(
				"%s order violated between nodes %d and %d", d, nodes[len(nodes)-1], id)
		}
		if len(nodes) == t.count {
			return nil, errors.AssertionFailedf(
				"%s dimension holds more than %d nodes", d, t.count)
		}
		nodes = append(nodes, id)
	}
	if len(nodes) != t.count {
		return nil, errors.AssertionFailedf(
			"%s dimension holds %d nodes, count is %d", d, len(nodes), t.count)
	}
	return nodes, nil
}

func (t *Tree[K, V]) compare(a, b NodeID, d Dim) int {
	if d == KeyDim {
		return t.cfg.CompareKeys(t.np.get(a).key, t.np.get(b).key)
	}
	return t.cfg.CompareValues(t.np.get(a).value, t.np.get(b).value)
}
