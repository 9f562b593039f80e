package cluster

import (
	"runtime"
	"sync"
)

// CoreGraph is an undirected graph over core points. An edge joins two
// distinct core points whose cosine distance is at most eps. Edges come from
// a fresh pairwise scan over core points only, not from the row-based
// neighborhoods: the two computations are kept separate on purpose.
type CoreGraph struct {
	// vertices holds core point indices in ascending order.
	vertices []int
	// adj[k] lists positions (into vertices) adjacent to vertices[k].
	adj [][]int
}

// BuildCoreGraph computes the core-to-core adjacency for the given core set.
// Each vertex's adjacency row is computed independently by a worker pool.
func BuildCoreGraph(points [][]float64, core IndexSet, eps float64) *CoreGraph {
	vertices := core.Sorted()
	g := &CoreGraph{
		vertices: vertices,
		adj:      make([][]int, len(vertices)),
	}
	rows := make(chan int)
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	if workers > len(vertices) {
		workers = len(vertices)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range rows {
				var edges []int
				for m, p := range vertices {
					if m == k {
						continue
					}
					if CosineDistance(points[vertices[k]], points[p]) <= eps {
						edges = append(edges, m)
					}
				}
				g.adj[k] = edges
			}
		}()
	}
	for k := range vertices {
		rows <- k
	}
	close(rows)
	wg.Wait()
	return g
}

// Vertices returns the core point indices in ascending order.
func (g *CoreGraph) Vertices() []int { return g.vertices }

// Degree returns the number of core-to-core edges at vertex position k.
func (g *CoreGraph) Degree(k int) int { return len(g.adj[k]) }

// Components extracts the connected components of the graph as the initial
// clusters. Components are discovered by iterative depth-first search in
// ascending vertex order, so cluster ids are deterministic for a fixed point
// set and eps. An isolated core point yields a singleton cluster.
func (g *CoreGraph) Components() ClusterSet {
	var clusters ClusterSet
	visited := make([]bool, len(g.vertices))
	for start := range g.vertices {
		if visited[start] {
			continue
		}
		members := make(IndexSet)
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			k := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			members.Add(g.vertices[k])
			for _, m := range g.adj[k] {
				if !visited[m] {
					visited[m] = true
					stack = append(stack, m)
				}
			}
		}
		clusters = append(clusters, members)
	}
	return clusters
}
