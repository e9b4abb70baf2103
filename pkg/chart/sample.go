package chart

// Sample returns a small demo chart: a CEO with two departments, one of
// them a vertical stack, plus a title label. Used by the init command to
// give new users something to lay out and render immediately.
func Sample() *Chart {
	c := &Chart{
		Name: "Acme Corp",
		Shapes: []Shape{
			{Type: TypeText, ID: "title", Text: "Acme Corp", X: 40, Y: 20, FontSize: 24},

			{Type: TypeRectangle, ID: "ceo", Text: "CEO"},
			{Type: TypeRectangle, ID: "vp-eng", Text: "VP Engineering"},
			{Type: TypeRectangle, ID: "vp-sales", Text: "VP Sales", ChildLayout: LayoutVertical},
			{Type: TypeEllipse, ID: "ops", Text: "Operations"},

			{Type: TypeRectangle, ID: "eng-platform", Text: "Platform"},
			{Type: TypeRectangle, ID: "eng-product", Text: "Product"},
			{Type: TypeRectangle, ID: "sales-east", Text: "East Region"},
			{Type: TypeRectangle, ID: "sales-west", Text: "West Region"},

			connect("c-ceo-eng", "ceo", "vp-eng"),
			connect("c-ceo-sales", "ceo", "vp-sales"),
			connect("c-ceo-ops", "ceo", "ops"),
			connect("c-eng-platform", "vp-eng", "eng-platform"),
			connect("c-eng-product", "vp-eng", "eng-product"),
			stackConnect("c-sales-east", "vp-sales", "sales-east"),
			stackConnect("c-sales-west", "vp-sales", "sales-west"),
		},
	}
	c.setDefaults()
	return c
}

// connect builds a standard tree connector from a parent's bottom to a
// child's top.
func connect(id, parent, child string) Shape {
	return Shape{
		Type:  TypeConnector,
		ID:    id,
		Start: &Binding{BoxID: parent, Side: SideBottom},
		End:   &Binding{BoxID: child, Side: SideTop},
	}
}

// stackConnect builds a vertical-stack connector that enters the child
// from the left, which routes it along the stack's spine.
func stackConnect(id, parent, child string) Shape {
	return Shape{
		Type:  TypeConnector,
		ID:    id,
		Start: &Binding{BoxID: parent, Side: SideBottom},
		End:   &Binding{BoxID: child, Side: SideLeft},
	}
}
