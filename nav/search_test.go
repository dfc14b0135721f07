package nav

import "testing"

const apiDoc = `title: Example API
resources:
  /users:
    get:
      description: list users
    post:
      description: create user`

func TestFindMatchesStartFirst(t *testing.T) {
	nv, _ := newNav(apiDoc)

	start := mustResolve(t, nv, 3) // get:
	got, ok := nv.Find(start, nv.Parent, func(Node) bool { return true })
	if !ok || got != start {
		t.Errorf("Find with always-true predicate = %v, %v, want the start node", got, ok)
	}
}

func TestFindAncestor(t *testing.T) {
	nv, _ := newNav(apiDoc)

	desc := mustResolve(t, nv, 4) // description under get
	got, ok := nv.FindAncestor(desc, func(n Node) bool {
		key, _ := n.Key()
		return key == "resources"
	})
	if !ok || got.Line != 1 {
		t.Errorf("FindAncestor(description, resources) = %v, %v, want line 1", got, ok)
	}
}

func TestFindAncestorExhausted(t *testing.T) {
	nv, _ := newNav(apiDoc)

	desc := mustResolve(t, nv, 4)
	if got, ok := nv.FindAncestor(desc, func(n Node) bool {
		key, _ := n.Key()
		return key == "missing"
	}); ok {
		t.Errorf("FindAncestor for absent key = %v, want not found", got)
	}
}

func TestFindPreceding(t *testing.T) {
	nv, _ := newNav(itemsDoc)

	c := mustResolve(t, nv, 3)
	got, ok := nv.FindPreceding(c, Node.IsListItemStart)
	if !ok || got.Line != 1 {
		t.Errorf("FindPreceding(c, list item start) = %v, %v, want the marker line", got, ok)
	}
}

func TestFindWithCustomStep(t *testing.T) {
	nv, _ := newNav(apiDoc)

	// Stepping through next siblings finds the post resource from get.
	get := mustResolve(t, nv, 3)
	got, ok := nv.Find(get, nv.NextSibling, func(n Node) bool {
		key, _ := n.Key()
		return key == "post"
	})
	if !ok || got.Line != 5 {
		t.Errorf("Find over next siblings = %v, %v, want the post line", got, ok)
	}
}
