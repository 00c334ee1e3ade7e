// Package remap applies a computed permutation consistently to points
// and any connectivity expressed in original indices.
//
// Every ordering strategy ends here: whatever produced the permutation
// (a geometric sort or a connectivity walk), Apply turns it into a full
// result — points in the new order, edges and faces rewritten through
// the inverse lookup, and the permutation itself exposed as the item
// order so callers can reapply it to unrelated parallel data.
//
// The inverse lookup (original index → new position) is built once per
// call and reused for every edge and face reference.
//
// Complexity: O(N + E + F·k) time, O(N) extra memory.
//
// Errors:
//   - ErrBadPermutation — order is not a bijection on the point indices.
//   - ErrUnknownIndex   — an edge or face references an original index
//     outside the point set; caller data corruption, surfaced
//     immediately, never recovered.
package remap
