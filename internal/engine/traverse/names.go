package traverse

import "incstate/internal/engine/api"

// NameCollector records definition and parameter names in visit order.
type NameCollector struct {
	Base
	Names []string
}

func (n *NameCollector) VisitName(name string) {
	n.Names = append(n.Names, name)
}

// CollectNames returns the names reachable from c in visit order.
func CollectNames(c *api.ClassLike) []string {
	n := &NameCollector{}
	Walk(n, c)
	return n.Names
}
