package containers

// RectDTO is the wire representation of a [geom.Rect].
type RectDTO struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DTO is the wire representation of a container, serialized to JSON
// with lower-camel-case field names for the IPC server (spec §6).
// Only the fields relevant to a container's kind are populated.
type DTO struct {
	ID       ID     `json:"id"`
	Kind     string `json:"kind"`
	Children []DTO  `json:"children,omitempty"`

	// monitor
	Rect  *RectDTO `json:"rect,omitempty"`
	Index *int     `json:"index,omitempty"`
	DPI   *float64 `json:"dpi,omitempty"`

	// workspace
	Name            string `json:"name,omitempty"`
	TilingDirection string `json:"tilingDirection,omitempty"`

	// split and tiling window
	SizePercent *float64 `json:"sizePercent,omitempty"`

	// window
	Handle    *uintptr `json:"handle,omitempty"`
	FocusMode string   `json:"focusMode,omitempty"`
}

// ToDTO converts n (and, if recurse is true, its full descendant
// subtree) into its wire representation.
func ToDTO(t *Tree, n Node, recurse bool) DTO {
	base := n.AsBase()
	dto := DTO{
		ID:   base.ID(),
		Kind: base.Kind().String(),
	}

	switch v := n.(type) {
	case *Monitor:
		rect := v.Rect()
		dto.Rect = &RectDTO{X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height}
		index := v.Index()
		dto.Index = &index
		dpi := v.DPI()
		dto.DPI = &dpi
	case *Workspace:
		dto.Name = v.Name()
		dto.TilingDirection = v.TilingDirection().String()
	case *Split:
		dto.TilingDirection = v.TilingDirection().String()
		sp := v.SizePercent()
		dto.SizePercent = &sp
	case *Window:
		handle := uintptr(v.Handle())
		dto.Handle = &handle
		dto.FocusMode = v.FocusMode().String()
		if base.Kind() == KindTilingWindow {
			sp := v.SizePercent()
			dto.SizePercent = &sp
		}
	}

	if recurse {
		for _, childID := range base.Children() {
			if child, ok := t.Get(childID); ok {
				dto.Children = append(dto.Children, ToDTO(t, child, true))
			}
		}
	}
	return dto
}
