package qtip

// Surface is the host rendering collaborator a panel reports to. The core
// never creates or draws surfaces; it only pushes the padded outer size and
// visibility through this contract, and asks for a full visual reset when
// the panel is recycled.
type Surface interface {
	SetSize(width, height int)
	Show()
	Hide()

	// Reset drops all visual state (background, borders, anchoring) so the
	// surface can be reused by a future owner.
	Reset()
}

// NopSurface is the stand-in used until the host attaches a real surface.
type NopSurface struct{}

func (NopSurface) SetSize(int, int) {}
func (NopSurface) Show()            {}
func (NopSurface) Hide()            {}
func (NopSurface) Reset()           {}
