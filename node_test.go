package yuletree

import "testing"

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestNodeConstructors(t *testing.T) {
	geo := NewConeGeometry(1, 1, 8)
	mat := NewStandardMaterial(ColorWhite)
	field := NewParticleField(SnowConfig{Count: 1}, newTestRand())

	tests := []struct {
		n    *Node
		want NodeType
	}{
		{NewGroup("g"), NodeTypeGroup},
		{NewMesh("m", geo, mat), NodeTypeMesh},
		{NewPoints("p", field, NewPointsMaterial(ColorWhite, 1)), NodeTypePoints},
	}
	for _, tt := range tests {
		if tt.n.Type != tt.want {
			t.Errorf("%s: Type = %v, want %v", tt.n.Name, tt.n.Type, tt.want)
		}
		if !tt.n.Visible {
			t.Errorf("%s: not visible by default", tt.n.Name)
		}
		if tt.n.Scale != (Vec3{1, 1, 1}) {
			t.Errorf("%s: Scale = %v, want unit", tt.n.Name, tt.n.Scale)
		}
		if tt.n.ID == 0 {
			t.Errorf("%s: ID not assigned", tt.n.Name)
		}
	}
}

func TestAddChild(t *testing.T) {
	root := NewGroup("root")
	a := NewGroup("a")
	b := NewGroup("b")
	root.AddChild(a)
	root.AddChild(b)

	if root.NumChildren() != 2 || root.ChildAt(0) != a || root.ChildAt(1) != b {
		t.Fatalf("children = %v", root.Children())
	}
	if a.Parent != root {
		t.Error("a.Parent != root")
	}
}

func TestAddChildReparents(t *testing.T) {
	p1 := NewGroup("p1")
	p2 := NewGroup("p2")
	c := NewGroup("c")
	p1.AddChild(c)
	p2.AddChild(c)
	if p1.NumChildren() != 0 || p2.NumChildren() != 1 || c.Parent != p2 {
		t.Errorf("reparent failed: p1=%d p2=%d", p1.NumChildren(), p2.NumChildren())
	}
}

func TestNodePanics(t *testing.T) {
	root := NewGroup("root")
	child := NewGroup("child")
	root.AddChild(child)

	expectPanic(t, "nil child", func() { root.AddChild(nil) })
	expectPanic(t, "cycle", func() { child.AddChild(root) })
	expectPanic(t, "self", func() { root.AddChild(root) })
	expectPanic(t, "index", func() { root.ChildAt(5) })
}

func TestWalkSkipsChildren(t *testing.T) {
	root := NewGroup("root")
	a := NewGroup("a")
	a.AddChild(NewGroup("a1"))
	root.AddChild(a)
	root.AddChild(NewGroup("b"))

	var names []string
	root.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return n.Name != "a"
	})
	want := []string{"root", "a", "b"}
	if len(names) != len(want) {
		t.Fatalf("visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("visited[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestAddChildMarksSubtreeDirty(t *testing.T) {
	root := NewGroup("root")
	a := NewGroup("a")
	a1 := NewGroup("a1")
	a.AddChild(a1)
	updateWorldMatrix(a, identityMatrix, false)
	if a1.transformDirty {
		t.Fatal("a1 dirty after update")
	}
	root.AddChild(a)
	if !a.transformDirty || !a1.transformDirty {
		t.Error("subtree not marked dirty on AddChild")
	}
}
