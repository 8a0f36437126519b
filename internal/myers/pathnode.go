// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package myers

// PathNode is a node in the edit graph's winning path. i, j are the grid coordinates reached
// after this node's edit; prev links toward the origin.
//
// A node that extends a diagonal run (a "snake", a maximal sequence of matches) sets isSnake and
// points lastSnake at itself; every other node copies lastSnake from its predecessor. This lets
// the backtrack skip entire snakes in O(1) instead of walking them element by element.
type PathNode struct {
	i, j      int
	prev      *PathNode
	isSnake   bool
	lastSnake *PathNode
}

func newDiffNode(i, j int, prev *PathNode) *PathNode {
	n := &PathNode{i: i, j: j}
	last := prev.lastSnake
	n.prev = last
	if i < 0 || j < 0 {
		n.lastSnake = nil
	} else {
		n.lastSnake = last.lastSnake
	}
	return n
}

func newSnake(i, j int, prev *PathNode) *PathNode {
	n := &PathNode{i: i, j: j, prev: prev, isSnake: true}
	n.lastSnake = n
	return n
}
