package editor

import "github.com/lorekeep/atlas/pkg/core"

// Action is one member of the closed set of editor transitions. The sealed
// marker keeps the set closed so Reduce can switch exhaustively.
type Action interface {
	isAction()
}

// SelectItem sets the selection (nil deselects) and returns to select mode.
type SelectItem struct {
	Selection *core.Selection
}

// SetTool switches the active tool, clearing selection and draw mode.
type SetTool struct {
	Tool Tool
}

// SetMode sets the interaction mode without touching the selection. This is
// the only way to leave draw mode.
type SetMode struct {
	Mode Mode
}

// ToggleVisibility flips a collection's layer visibility.
type ToggleVisibility struct {
	Kind core.EntityKind
}

// AddMarker appends a marker and selects it.
type AddMarker struct {
	Marker core.Marker
}

// UpdateMarker merges the patch into the matching marker. Unknown ids are
// ignored.
type UpdateMarker struct {
	ID    string
	Patch MarkerPatch
}

// DeleteMarker removes a marker, clearing the selection if it pointed at it.
type DeleteMarker struct {
	ID string
}

// AddPath appends a path, selects it and enters draw mode: drawing starts
// immediately on creation.
type AddPath struct {
	Path core.Path
}

type UpdatePath struct {
	ID    string
	Patch PathPatch
}

type DeletePath struct {
	ID string
}

// AppendPathVertex pushes a vertex onto the end of a path.
type AppendPathVertex struct {
	ID          string
	Coordinates core.Position
}

// UpdatePathVertex patches the vertex at Index. Out-of-range indexes are
// ignored; the list never grows from an update.
type UpdatePathVertex struct {
	ID    string
	Index int
	Patch VertexPatch
}

// AddArea appends an area, selects it and enters draw mode.
type AddArea struct {
	Area core.Area
}

type UpdateArea struct {
	ID    string
	Patch AreaPatch
}

type DeleteArea struct {
	ID string
}

type AppendAreaVertex struct {
	ID          string
	Coordinates core.Position
}

type UpdateAreaVertex struct {
	ID    string
	Index int
	Patch VertexPatch
}

// InsertAreaVertex inserts a vertex after Index, used to split an edge at
// its midpoint (including the closing edge, where Index is the last vertex).
type InsertAreaVertex struct {
	ID          string
	Index       int
	Coordinates core.Position
}

// DeleteAreaVertex removes the vertex at Index. Dropping a polygon below 3
// vertices is allowed; it just stops being drawable.
type DeleteAreaVertex struct {
	ID    string
	Index int
}

// AddOverlay appends an overlay and selects it.
type AddOverlay struct {
	Overlay core.Overlay
}

type UpdateOverlay struct {
	ID    string
	Patch OverlayPatch
}

type DeleteOverlay struct {
	ID string
}

func (SelectItem) isAction()       {}
func (SetTool) isAction()          {}
func (SetMode) isAction()          {}
func (ToggleVisibility) isAction() {}
func (AddMarker) isAction()        {}
func (UpdateMarker) isAction()     {}
func (DeleteMarker) isAction()     {}
func (AddPath) isAction()          {}
func (UpdatePath) isAction()       {}
func (DeletePath) isAction()       {}
func (AppendPathVertex) isAction() {}
func (UpdatePathVertex) isAction() {}
func (AddArea) isAction()          {}
func (UpdateArea) isAction()       {}
func (DeleteArea) isAction()       {}
func (AppendAreaVertex) isAction() {}
func (UpdateAreaVertex) isAction() {}
func (InsertAreaVertex) isAction() {}
func (DeleteAreaVertex) isAction() {}
func (AddOverlay) isAction()       {}
func (UpdateOverlay) isAction()    {}
func (DeleteOverlay) isAction()    {}

// MarkerPatch is a partial marker update; nil fields are left unchanged.
type MarkerPatch struct {
	Label    *string
	Category *string
	Position *core.Position
	Type     *string
	Color    *string
	Display  *string
}

func (p MarkerPatch) apply(m *core.Marker) {
	if p.Label != nil {
		m.Label = *p.Label
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Position != nil {
		m.SetPosition(*p.Position)
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Color != nil {
		m.Color = *p.Color
	}
	if p.Display != nil {
		m.Display = *p.Display
	}
}

// PathPatch is a partial path update; nil fields are left unchanged.
type PathPatch struct {
	Name      *string
	LineColor *string
	Opacity   *float64
	DashArray *string
}

func (p PathPatch) apply(path *core.Path) {
	if p.Name != nil {
		path.Name = *p.Name
	}
	if p.LineColor != nil {
		path.LineColor = *p.LineColor
	}
	if p.Opacity != nil {
		path.Opacity = *p.Opacity
	}
	if p.DashArray != nil {
		path.DashArray = *p.DashArray
	}
}

// AreaPatch is a partial area update; nil fields are left unchanged.
type AreaPatch struct {
	Name           *string
	LineColor      *string
	InteriorColor  *string
	FillOpacity    *float64
	LabelPosition  *core.Position
	FontSize       *float64
	LabelColor     *string
	TextRotation   *float64
	LabelBgColor   *string
	LabelBgOpacity *float64
}

func (p AreaPatch) apply(a *core.Area) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.LineColor != nil {
		a.LineColor = *p.LineColor
	}
	if p.InteriorColor != nil {
		a.InteriorColor = *p.InteriorColor
	}
	if p.FillOpacity != nil {
		v := *p.FillOpacity
		a.FillOpacity = &v
	}
	if p.LabelPosition != nil {
		v := *p.LabelPosition
		a.LabelPosition = &v
	}
	if p.FontSize != nil {
		a.FontSize = *p.FontSize
	}
	if p.LabelColor != nil {
		a.LabelColor = *p.LabelColor
	}
	if p.TextRotation != nil {
		a.TextRotation = *p.TextRotation
	}
	if p.LabelBgColor != nil {
		a.LabelBgColor = *p.LabelBgColor
	}
	if p.LabelBgOpacity != nil {
		v := *p.LabelBgOpacity
		a.LabelBgOpacity = &v
	}
}

// OverlayPatch is a partial overlay update; nil fields are left unchanged.
type OverlayPatch struct {
	Name   *string
	Image  *string
	Bounds *core.Bounds
}

func (p OverlayPatch) apply(o *core.Overlay) {
	if p.Name != nil {
		o.Name = *p.Name
	}
	if p.Image != nil {
		o.Image = *p.Image
	}
	if p.Bounds != nil {
		o.Bounds = *p.Bounds
	}
}

// VertexPatch is a partial vertex update; nil fields are left unchanged.
type VertexPatch struct {
	Coordinates *core.Position
	Text        *string
}

func (p VertexPatch) apply(v *core.Vertex) {
	if p.Coordinates != nil {
		v.Coordinates = *p.Coordinates
	}
	if p.Text != nil {
		v.Text = *p.Text
	}
}
