package core

// NoVertex marks a selection that targets a whole entity rather than one of
// its vertices.
const NoVertex = -1

// Selection is transient editor state pointing at an existing entity, and
// optionally at a single vertex of a path or area. It is never persisted.
type Selection struct {
	Kind        EntityKind `json:"kind"`
	ID          string     `json:"id"`
	VertexIndex int        `json:"vertexIndex"`
}

// Select returns a whole-entity selection.
func Select(kind EntityKind, id string) *Selection {
	return &Selection{Kind: kind, ID: id, VertexIndex: NoVertex}
}

// SelectVertex returns a selection targeting vertex index of a path or area.
func SelectVertex(kind EntityKind, id string, index int) *Selection {
	return &Selection{Kind: kind, ID: id, VertexIndex: index}
}

// Is reports whether the selection targets the given entity.
func (s *Selection) Is(kind EntityKind, id string) bool {
	return s != nil && s.Kind == kind && s.ID == id
}
