package dispatch

import (
	"container/heap"
	"math"
)

// CityGraph is a weighted adjacency list over named road-network nodes.
type CityGraph struct {
	adjacency map[string][]edge
}

type edge struct {
	to     string
	weight float64
}

func NewCityGraph() *CityGraph {
	return &CityGraph{adjacency: make(map[string][]edge)}
}

// AddEdge inserts a bidirectional weighted edge between two nodes.
func (g *CityGraph) AddEdge(u, v string, weight float64) {
	g.adjacency[u] = append(g.adjacency[u], edge{to: v, weight: weight})
	g.adjacency[v] = append(g.adjacency[v], edge{to: u, weight: weight})
}

// HasNode reports whether the node exists in the graph.
func (g *CityGraph) HasNode(name string) bool {
	_, ok := g.adjacency[name]
	return ok
}

// ShortestPath runs Dijkstra from start to end. Returns the total distance
// and the node path; an unreachable end yields +Inf and a nil path.
func (g *CityGraph) ShortestPath(start, end string) (float64, []string) {
	if !g.HasNode(start) || !g.HasNode(end) {
		return math.Inf(1), nil
	}

	dist := make(map[string]float64, len(g.adjacency))
	prev := make(map[string]string, len(g.adjacency))
	for node := range g.adjacency {
		dist[node] = math.Inf(1)
	}
	dist[start] = 0

	pq := &nodeQueue{{node: start, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(nodeDist)
		if current.node == end {
			break
		}
		if current.dist > dist[current.node] {
			continue
		}
		for _, e := range g.adjacency[current.node] {
			d := current.dist + e.weight
			if d < dist[e.to] {
				dist[e.to] = d
				prev[e.to] = current.node
				heap.Push(pq, nodeDist{node: e.to, dist: d})
			}
		}
	}

	if math.IsInf(dist[end], 1) {
		return math.Inf(1), nil
	}

	var path []string
	for node := end; ; {
		path = append([]string{node}, path...)
		p, ok := prev[node]
		if !ok {
			break
		}
		node = p
	}
	return dist[end], path
}

type nodeDist struct {
	node string
	dist float64
}

type nodeQueue []nodeDist

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(nodeDist)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
