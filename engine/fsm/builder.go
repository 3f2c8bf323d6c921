package fsm

import "fmt"

// AddState adds a node to the machine manually
func (m *Machine[T]) AddState(id StateID, name string, parentID StateID) *Node[T] {
	node := &Node[T]{
		ID:       id,
		Name:     name,
		ParentID: parentID,
	}
	m.nodes[id] = node
	m.nameToID[name] = id
	return node
}

// CompilePaths calculates the Path slice and child count for every node
// Must be called after all nodes are added and before Init
func (m *Machine[T]) CompilePaths() error {
	for _, node := range m.nodes {
		node.Children = 0
	}
	for id, node := range m.nodes {
		path := make([]StateID, 0, 4)
		curr := node

		for {
			path = append(path, curr.ID)
			if curr.ParentID == StateNone {
				break
			}
			parent, ok := m.nodes[curr.ParentID]
			if !ok {
				return fmt.Errorf("node %d references missing parent %d", id, curr.ParentID)
			}
			if len(path) > len(m.nodes) {
				return fmt.Errorf("state '%s' has a parent cycle", node.Name)
			}
			curr = parent
		}

		// Reverse to get [Root, ..., Leaf]
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
		node.Path = path

		if node.ParentID != StateNone {
			m.nodes[node.ParentID].Children++
		}
	}
	return nil
}
