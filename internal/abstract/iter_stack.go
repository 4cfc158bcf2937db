// Copyright 2018 The Cockroach Authors.
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

// walkStack represents a stack of (node, black depth) tuples, which captures
// the state of a depth-first walk over one dimension.
type walkStack struct {
	a    walkStackArr
	aLen int16 // -1 when using s
	s    []walkFrame
}

// A red-black tree of 2^32 nodes is at most 64 levels deep; most trees fit in
// the inline array.
const walkStackDepth = 24

// Used to avoid allocations for stacks below a certain size.
type walkStackArr [walkStackDepth]walkFrame

type walkFrame struct {
	id NodeID

	// blacks counts the black nodes from the root to id, inclusive.
	blacks int
}

func (ws *walkStack) push(f walkFrame) {
	if ws.aLen == -1 {
		ws.s = append(ws.s, f)
	} else if int(ws.aLen) == len(ws.a) {
		ws.s = make([]walkFrame, int(ws.aLen)+1, 2*int(ws.aLen))
		copy(ws.s, ws.a[:])
		ws.s[int(ws.aLen)] = f
		ws.aLen = -1
	} else {
		ws.a[ws.aLen] = f
		ws.aLen++
	}
}

func (ws *walkStack) pop() walkFrame {
	if ws.aLen == -1 {
		f := ws.s[len(ws.s)-1]
		ws.s = ws.s[:len(ws.s)-1]
		return f
	}
	ws.aLen--
	return ws.a[ws.aLen]
}

func (ws *walkStack) len() int {
	if ws.aLen == -1 {
		return len(ws.s)
	}
	return int(ws.aLen)
}
