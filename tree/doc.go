/*
Package tree implements a small generic tree type.

Nodes carry a payload of a type parameter T and know their parent and their
children. Concrete node types embed a Node and let the payload reference the
embedding value, so that navigation on the embedded Node leads back to the
concrete type:

   type MyNode struct {
       tree.Node[*MyNode]
       name string
   }

   func NewMyNode(name string) *MyNode {
       n := &MyNode{name: name}
       n.Payload = n
       return n
   }

Trees are not safe for concurrent modification. Snapshot trees are built
once and then only read, which makes locking unnecessary.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree
