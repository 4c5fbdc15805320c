/*
Multi-way trees whose per-level branching comes from a numeric sequence, with breadth-first enumeration and persistence.

## Terminology

node: the unit of storage. has an integer id, an ordered list of owned children, and a weak back-reference to its parent

owning edge: parent -> child, through the `children` list. the tree (and all memory it references) is released by dropping the root

back-reference: child -> parent, held as a `weak.Pointer`. it is only a lookup aid: it never keeps a node alive, and it resolves to nil once the parent has been collected

level: all nodes at the same distance from the root. generation builds one full level at a time

## Tricky Bits

Persisted forms only carry owning edges. A freshly loaded tree has every back-reference unresolved; callers must run `Relink` (or use `LoadLinked`) before navigating upwards.

The branching sequence is consumed starting at its second value: the first value stands for the root, which already exists.

## Hacking

Nothing here is safe for concurrent mutation. If trees are ever shared across goroutines, `AppendChild` and the parent assignment must happen under a single lock.
*/
package tree
