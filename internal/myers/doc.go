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

// Package myers is a clean-room implementation of Eugene Myers' shortest-edit-script
// differencing algorithm (An O(ND) difference algorithm and its variations, Algorithmica 1,
// 251-266 (1986)).
//
// Unlike the divide-and-conquer, linear-space variant, this package implements the paper's
// original greedy formulation directly: a single diagonal array indexed by k = i-j, walked for
// d = 0, 1, 2, ... until the bottom-right corner of the edit graph is reached. Every step records
// a PathNode so the final edit script can be recovered by walking predecessors back to the
// origin. This trades O(D) memory retained along the winning path (plus the O(N+M) diagonal
// array) for a backtrack that is a direct, unembellished reading of the paper, at the cost of not
// scaling as gracefully to huge, highly dissimilar inputs as the linear-space variant does; see
// the accelerated engine in this module for that tradeoff.
//
// The tie-break rule used to pick between the two predecessor diagonals when extending the
// frontier (take the down-move from k+1 when k is the lower boundary -d, or when k is not the upper
// boundary d and diagonal k+1 is strictly further along than k-1; otherwise take the right-move
// from k-1) is part of this package's contract: it determines which of the several
// equally-minimal edit scripts is produced, and callers may depend on it being deterministic and
// reproducible across runs.
package myers
