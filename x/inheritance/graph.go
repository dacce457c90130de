package inheritance

import (
	"context"

	"github.com/totegamma/permgraph/core"
)

// ancestors walks active edges backward from permissionID and returns every
// permission it inherits from, nearest first. The visited set keeps the walk
// finite even if the stored graph already contains a cycle.
func ancestors(ctx context.Context, repo Repository, permissionID string) ([]string, error) {
	visited := map[string]bool{permissionID: true}
	result := []string{}
	queue := []string{permissionID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		edges, err := repo.ListActiveByChild(ctx, current)
		if err != nil {
			return nil, err
		}

		for _, edge := range edges {
			if visited[edge.ParentID] {
				continue
			}
			visited[edge.ParentID] = true
			result = append(result, edge.ParentID)
			queue = append(queue, edge.ParentID)
		}
	}

	return result, nil
}

// wouldCycle reports whether adding parent -> child closes a loop.
func wouldCycle(ctx context.Context, repo Repository, parentID, childID string) (bool, error) {
	if parentID == childID {
		return true, nil
	}
	closure, err := ancestors(ctx, repo, parentID)
	if err != nil {
		return false, err
	}
	for _, id := range closure {
		if id == childID {
			return true, nil
		}
	}
	return false, nil
}

// prospectiveDepth counts the ancestors the child would have once parent -> child exists.
func prospectiveDepth(ctx context.Context, repo Repository, parentID, childID string) (int, error) {
	set := map[string]bool{parentID: true}

	fromParent, err := ancestors(ctx, repo, parentID)
	if err != nil {
		return 0, err
	}
	for _, id := range fromParent {
		set[id] = true
	}

	fromChild, err := ancestors(ctx, repo, childID)
	if err != nil {
		return 0, err
	}
	for _, id := range fromChild {
		set[id] = true
	}

	delete(set, childID)
	return len(set), nil
}

func clampDepth(depth int) int {
	if depth < core.MinMaxDepth {
		return core.MinMaxDepth
	}
	if depth > core.HardMaxDepth {
		return core.HardMaxDepth
	}
	return depth
}
